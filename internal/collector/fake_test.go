package collector

import (
	"errors"
	"reflect"
)

var errBoom = errors.New("boom")

type fakeHost struct {
	goos    string
	panicOn string

	platform    Platform
	platformErr error
	user        string
	userErr     error
	cpu         CPUSpec
	cpuErr      error
	mem         MemoryStat
	memErr      error
	volumes     []Volume
	volumesErr  error
	usage       map[string]VolumeUsage
	usageErr    map[string]error
	ifaces      []Interface
	ifacesErr   error
	board       Baseboard
	boardErr    error
	gpus        []GPU
	gpusErr     error
}

// failingHost returns a host on goos whose every source fails.
func failingHost(goos string) *fakeHost {
	return &fakeHost{
		goos:        goos,
		platformErr: errBoom,
		userErr:     errBoom,
		cpuErr:      errBoom,
		memErr:      errBoom,
		volumesErr:  errBoom,
		ifacesErr:   errBoom,
		boardErr:    errBoom,
		gpusErr:     errBoom,
	}
}

func (h *fakeHost) check(method string) {
	if h.panicOn == method {
		panic(method + " exploded")
	}
}

func (h *fakeHost) GOOS() string { return h.goos }

func (h *fakeHost) Platform() (Platform, error) {
	h.check("Platform")
	return h.platform, h.platformErr
}

func (h *fakeHost) User() (string, error) {
	h.check("User")
	return h.user, h.userErr
}

func (h *fakeHost) CPU() (CPUSpec, error) {
	h.check("CPU")
	return h.cpu, h.cpuErr
}

func (h *fakeHost) Memory() (MemoryStat, error) {
	h.check("Memory")
	return h.mem, h.memErr
}

func (h *fakeHost) Volumes() ([]Volume, error) {
	h.check("Volumes")
	return h.volumes, h.volumesErr
}

func (h *fakeHost) Usage(mountpoint string) (VolumeUsage, error) {
	h.check("Usage")
	if err := h.usageErr[mountpoint]; err != nil {
		return VolumeUsage{}, err
	}
	return h.usage[mountpoint], nil
}

func (h *fakeHost) Interfaces() ([]Interface, error) {
	h.check("Interfaces")
	return h.ifaces, h.ifacesErr
}

func (h *fakeHost) Baseboard() (Baseboard, error) {
	h.check("Baseboard")
	return h.board, h.boardErr
}

func (h *fakeHost) GPUs() ([]GPU, error) {
	h.check("GPUs")
	return h.gpus, h.gpusErr
}

// fakeSession answers queries from canned rows keyed by query text.
type fakeSession struct {
	err     error
	errOn   map[string]error
	rows    map[string]any
	queries    []string
	closed     int
	closePanic bool
}

func (s *fakeSession) Query(query string, dst any) error {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return s.err
	}
	if err := s.errOn[query]; err != nil {
		return err
	}
	if v, ok := s.rows[query]; ok {
		reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func (s *fakeSession) Close() error {
	s.closed++
	if s.closePanic {
		panic("close exploded")
	}
	return nil
}

func openerFor(s *fakeSession) Opener {
	return func() (Instrumentation, error) { return s, nil }
}

func failingOpener() (Instrumentation, error) {
	return nil, errBoom
}
