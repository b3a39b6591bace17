package collector

import "strings"

var motherboardFields = []string{
	"Manufacturer",
	"Product",
	"Version",
	"Serial Number",
}

// probeMotherboard reads Win32_BaseBoard on Windows and the SMBIOS baseboard
// structure elsewhere.
func probeMotherboard(env *probeEnv, r *Result) {
	if !env.windows() {
		b, err := env.host.Baseboard()
		if err != nil {
			r.fail(err)
			return
		}
		setBaseboard(r, b)
		return
	}

	inst, err := env.instrumentation()
	if err != nil {
		r.fail(err)
		return
	}
	var rows []win32BaseBoard
	if err := inst.Query(queryBaseBoard, &rows); err != nil {
		r.fail(queryFailed("Win32_BaseBoard", err))
		return
	}
	if len(rows) == 0 {
		r.fail(queryFailed("Win32_BaseBoard", errNoInstances))
		return
	}
	setBaseboard(r, Baseboard{
		Manufacturer: rows[0].Manufacturer,
		Product:      rows[0].Product,
		Version:      rows[0].Version,
		SerialNumber: rows[0].SerialNumber,
	})
}

func setBaseboard(r *Result, b Baseboard) {
	r.set("Manufacturer", strings.TrimSpace(b.Manufacturer))
	r.set("Product", strings.TrimSpace(b.Product))
	r.set("Version", strings.TrimSpace(b.Version))
	r.set("Serial Number", strings.TrimSpace(b.SerialNumber))
}
