package collector

import (
	"errors"
	"io/fs"
	"net/netip"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/siderolabs/go-smbios/smbios"
)

// LocalOptions tunes the local host adapter.
type LocalOptions struct {
	CommandTimeout time.Duration
	AllPartitions  bool
}

type localHost struct {
	opts   LocalOptions
	runner Runner
	goos   string
}

// NewLocalHost returns a Host backed by gopsutil, SMBIOS tables, ghw and
// platform utilities of the running machine.
func NewLocalHost(opts LocalOptions) Host {
	return &localHost{
		opts:   opts,
		runner: ExecRunner{Timeout: opts.CommandTimeout},
		goos:   runtime.GOOS,
	}
}

func (h *localHost) GOOS() string { return h.goos }

func (h *localHost) Platform() (Platform, error) {
	p, err := uname()

	info, herr := host.Info()
	if herr == nil {
		p.OS = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		if p.Node == "" {
			p.Node = info.Hostname
		}
		if p.Machine == "" {
			p.Machine = info.KernelArch
		}
		if p.Release == "" {
			p.Release = info.KernelVersion
		}
	} else {
		herr = queryFailed("host info", herr)
	}
	return p, errors.Join(err, herr)
}

func (h *localHost) User() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", queryFailed("current user", err)
	}
	return u.Username, nil
}

func (h *localHost) CPU() (CPUSpec, error) {
	spec := CPUSpec{Arch: hostArch()}
	var errs []error

	infos, err := cpu.Info()
	if err != nil {
		errs = append(errs, queryFailed("cpu info", err))
	}
	if len(infos) > 0 {
		spec.Name = strings.TrimSpace(infos[0].ModelName)
		spec.MaxMHz = infos[0].Mhz
	}

	if n, err := cpu.Counts(true); err == nil {
		spec.Logical = n
	} else {
		errs = append(errs, queryFailed("logical cpu count", err))
	}
	if n, err := cpu.Counts(false); err == nil {
		spec.Physical = n
	} else {
		errs = append(errs, queryFailed("physical cpu count", err))
	}

	if h.goos == "linux" {
		spec.CurrentMHz = currentMHz()
		if err := h.lscpuCaches(&spec); err != nil {
			errs = append(errs, err)
		}
	}
	return spec, errors.Join(errs...)
}

var kernelArch = host.KernelArch

// hostArch is the machine architecture reported by the kernel, which can
// differ from the binary's GOARCH (a 386 build on an amd64 host).
func hostArch() string {
	if arch, err := kernelArch(); err == nil && strings.TrimSpace(arch) != "" {
		return strings.TrimSpace(arch)
	}
	return runtime.GOARCH
}

// currentMHz reads the clock of the first processor from /proc/cpuinfo.
func currentMHz() float64 {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return 0
	}
	records, _ := ParseRecords(string(data))
	if len(records) == 0 {
		return 0
	}
	mhz, err := strconv.ParseFloat(records[0].Lookup("cpu MHz"), 64)
	if err != nil {
		return 0
	}
	return mhz
}

// lscpuCaches fills cache sizes from lscpu. A missing lscpu binary is not
// an error; the cache fields simply stay empty.
func (h *localHost) lscpuCaches(spec *CPUSpec) error {
	out, err := h.runner.Run("lscpu")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil
		}
		return queryFailed("lscpu", err)
	}
	records, err := ParseRecords(out)
	for _, rec := range records {
		spec.L1Cache = firstNonEmpty(spec.L1Cache, cacheSize(rec.Lookup("L1d cache", "L1d")))
		spec.L2Cache = firstNonEmpty(spec.L2Cache, cacheSize(rec.Lookup("L2 cache", "L2")))
		spec.L3Cache = firstNonEmpty(spec.L3Cache, cacheSize(rec.Lookup("L3 cache", "L3")))
	}
	if err != nil {
		return queryFailed("lscpu", err)
	}
	return nil
}

// cacheSize drops the instance count lscpu appends, e.g. "32 KiB (1 instance)".
func cacheSize(v string) string {
	if i := strings.Index(v, " ("); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

func (h *localHost) Memory() (MemoryStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStat{}, queryFailed("virtual memory", err)
	}
	return MemoryStat{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}

func (h *localHost) Volumes() ([]Volume, error) {
	parts, err := disk.Partitions(h.opts.AllPartitions)
	if err != nil && len(parts) == 0 {
		return nil, queryFailed("partitions", err)
	}

	vols := make([]Volume, 0, len(parts))
	for _, p := range parts {
		v := Volume{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			FSType:     p.Fstype,
			Opts:       p.Opts,
		}
		v.Removable = volumeRemovable(p.Device)
		vols = append(vols, v)
	}
	if err != nil {
		return vols, queryFailed("partitions", err)
	}
	return vols, nil
}

// driveRoot turns a drive device such as "E:" into the root path `E:\`
// expected by the Windows volume APIs.
func driveRoot(device string) string {
	device = strings.TrimRight(device, `\/`)
	if len(device) == 2 && device[1] == ':' {
		return device + `\`
	}
	return device
}

func (h *localHost) Usage(mountpoint string) (VolumeUsage, error) {
	u, err := disk.Usage(mountpoint)
	if err != nil {
		return VolumeUsage{}, queryFailed("usage "+mountpoint, err)
	}
	return VolumeUsage{Total: u.Total, Used: u.Used, Free: u.Free}, nil
}

func (h *localHost) Interfaces() ([]Interface, error) {
	stats, err := psnet.Interfaces()
	if err != nil {
		return nil, queryFailed("interfaces", err)
	}

	out := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{
			Name:     s.Name,
			Loopback: slices.Contains(s.Flags, "loopback"),
		}
		if s.HardwareAddr != "" {
			iface.Addrs = append(iface.Addrs, Address{Family: FamilyLink, Value: s.HardwareAddr})
		}
		for _, a := range s.Addrs {
			iface.Addrs = append(iface.Addrs, classifyAddr(a.Addr))
		}
		out = append(out, iface)
	}
	return out, nil
}

// classifyAddr tags an address in CIDR or plain form with its family.
func classifyAddr(s string) Address {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		prefix, perr := netip.ParsePrefix(s)
		if perr != nil {
			return Address{Family: FamilyUnknown, Value: s}
		}
		addr = prefix.Addr()
	}
	switch {
	case addr.Is4():
		return Address{Family: FamilyIPv4, Value: addr.String()}
	case addr.Is6():
		return Address{Family: FamilyIPv6, Value: addr.String()}
	default:
		return Address{Family: FamilyUnknown, Value: s}
	}
}

func (h *localHost) Baseboard() (Baseboard, error) {
	switch h.goos {
	case "linux", "freebsd", "windows":
	default:
		return Baseboard{}, ErrNotApplicable
	}

	s, err := smbios.New()
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return Baseboard{}, ErrNotApplicable.WithCause(err)
		case errors.Is(err, fs.ErrPermission):
			return Baseboard{}, ErrSourceUnavailable.WithCause(err)
		default:
			return Baseboard{}, queryFailed("smbios", err)
		}
	}

	b := s.BaseboardInformation
	return Baseboard{
		Manufacturer: strings.TrimSpace(b.Manufacturer),
		Product:      strings.TrimSpace(b.Product),
		Version:      strings.TrimSpace(b.Version),
		SerialNumber: strings.TrimSpace(b.SerialNumber),
	}, nil
}

func (h *localHost) GPUs() ([]GPU, error) {
	if h.goos != "linux" {
		return nil, ErrNotApplicable
	}

	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, queryFailed("gpu", err)
	}

	var gpus []GPU
	for _, card := range info.GraphicsCards {
		g := GPU{Name: card.Address}
		if d := card.DeviceInfo; d != nil {
			if d.Product != nil {
				g.Name = d.Product.Name
			}
			if d.Vendor != nil {
				g.Processor = d.Vendor.Name
			}
			g.DriverVersion = d.Driver
		}
		gpus = append(gpus, g)
	}
	return gpus, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
