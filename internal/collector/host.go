package collector

// Host exposes the portable introspection facilities of the local machine.
//
// Methods that can return a partially filled value alongside an error do so;
// callers keep whatever was filled in. Methods the platform cannot serve
// return ErrNotApplicable.
type Host interface {
	GOOS() string
	Platform() (Platform, error)
	User() (string, error)
	CPU() (CPUSpec, error)
	Memory() (MemoryStat, error)
	Volumes() ([]Volume, error)
	Usage(mountpoint string) (VolumeUsage, error)
	Interfaces() ([]Interface, error)
	Baseboard() (Baseboard, error)
	GPUs() ([]GPU, error)
}

// Platform is the uname-style identity of the host.
type Platform struct {
	System    string
	Node      string
	Release   string
	Version   string
	Machine   string
	Processor string
	OS        string
}

// CPUSpec describes the first processor package.
type CPUSpec struct {
	Name       string
	Arch       string
	Logical    int
	Physical   int
	CurrentMHz float64
	MaxMHz     float64
	L1Cache    string
	L2Cache    string
	L3Cache    string
}

// MemoryStat holds physical memory totals in bytes.
type MemoryStat struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// Volume is a mounted partition.
type Volume struct {
	Device     string
	Mountpoint string
	FSType     string
	Opts       []string
	Removable  bool
}

// VolumeUsage holds byte counts for one volume.
type VolumeUsage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// Family classifies an interface address.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyLink
	FamilyIPv4
	FamilyIPv6
)

// Address is one entry of an interface address list.
type Address struct {
	Family Family
	Value  string
}

// Interface is a network interface with its address list.
type Interface struct {
	Name     string
	Loopback bool
	Addrs    []Address
}

// Baseboard identifies the motherboard.
type Baseboard struct {
	Manufacturer string
	Product      string
	Version      string
	SerialNumber string
}

// GPU is one display adapter.
type GPU struct {
	Name          string
	Processor     string
	MemoryBytes   uint64
	DriverVersion string
}
