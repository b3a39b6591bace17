package collector

// Instrumentation is a session against the native instrumentation
// subsystem. A session is opened at most once per collection run and closed
// when the run ends.
type Instrumentation interface {
	Query(query string, dst any) error
	Close() error
}

// Opener starts an instrumentation session.
type Opener func() (Instrumentation, error)

// WMI classes queried by the Windows probes. Field names match the WMI
// property names.

type win32OperatingSystem struct {
	SerialNumber string
	Version      string
	Caption      string
}

type win32Processor struct {
	ProcessorId       string
	CurrentClockSpeed uint32
	MaxClockSpeed     uint32
	L2CacheSize       uint32
	L3CacheSize       uint32
}

type win32BIOS struct {
	Manufacturer      string
	SMBIOSBIOSVersion string
	ReleaseDate       string
	SerialNumber      string
}

type win32BaseBoard struct {
	Manufacturer string
	Product      string
	Version      string
	SerialNumber string
}

type win32PointingDevice struct {
	Name string
}

type win32Keyboard struct {
	Name string
}

type win32VideoController struct {
	Name           string
	VideoProcessor string
	AdapterRAM     uint32
	DriverVersion  string
}

type win32DesktopMonitor struct {
	Name         string
	ScreenHeight uint32
	ScreenWidth  uint32
	Status       string
}

type win32SoundDevice struct {
	Name string
}

const (
	queryOperatingSystem = "SELECT SerialNumber, Version, Caption FROM Win32_OperatingSystem"
	queryProcessor       = "SELECT ProcessorId, CurrentClockSpeed, MaxClockSpeed, L2CacheSize, L3CacheSize FROM Win32_Processor"
	queryBIOS            = "SELECT Manufacturer, SMBIOSBIOSVersion, ReleaseDate, SerialNumber FROM Win32_BIOS"
	queryBaseBoard       = "SELECT Manufacturer, Product, Version, SerialNumber FROM Win32_BaseBoard"
	queryPointingDevice  = "SELECT Name FROM Win32_PointingDevice"
	queryKeyboard        = "SELECT Name FROM Win32_Keyboard"
	queryVideoController = "SELECT Name, VideoProcessor, AdapterRAM, DriverVersion FROM Win32_VideoController"
	queryDesktopMonitor  = "SELECT Name, ScreenHeight, ScreenWidth, Status FROM Win32_DesktopMonitor"
	querySoundDevice     = "SELECT Name FROM Win32_SoundDevice"
)
