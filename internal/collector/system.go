package collector

var systemFields = []string{
	"System",
	"Device Name",
	"Release",
	"Version",
	"Machine",
	"Processor",
	"Platform",
	"User Name",
	"Product ID",
}

// probeSystem reports the uname identity, the current user and, on Windows,
// the product ID from Win32_OperatingSystem.
func probeSystem(env *probeEnv, r *Result) {
	p, err := env.host.Platform()
	r.set("System", p.System)
	r.set("Device Name", p.Node)
	r.set("Release", p.Release)
	r.set("Version", p.Version)
	r.set("Machine", p.Machine)
	r.set("Processor", p.Processor)
	r.set("Platform", p.OS)
	r.warn(err)

	u, err := env.host.User()
	r.set("User Name", u)
	r.warn(err)

	inst, err := env.instrumentation()
	if err != nil {
		r.warn(err)
		return
	}
	var rows []win32OperatingSystem
	if err := inst.Query(queryOperatingSystem, &rows); err != nil {
		r.warn(queryFailed("Win32_OperatingSystem", err))
		return
	}
	if len(rows) == 0 {
		r.warn(queryFailed("Win32_OperatingSystem", errNoInstances))
		return
	}
	r.set("Product ID", rows[0].SerialNumber)
	if rows[0].Caption != "" {
		r.set("Platform", rows[0].Caption+" "+rows[0].Version)
	}
}
