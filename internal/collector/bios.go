package collector

var biosFields = []string{
	"Manufacturer",
	"BIOS Version",
	"Release Date",
	"Serial Number",
}

// probeBIOS reads Win32_BIOS. Other platforms report the category as
// unavailable.
func probeBIOS(env *probeEnv, r *Result) {
	inst, err := env.instrumentation()
	if err != nil {
		r.fail(err)
		return
	}

	var rows []win32BIOS
	if err := inst.Query(queryBIOS, &rows); err != nil {
		r.fail(queryFailed("Win32_BIOS", err))
		return
	}
	if len(rows) == 0 {
		r.fail(queryFailed("Win32_BIOS", errNoInstances))
		return
	}

	b := rows[0]
	r.set("Manufacturer", b.Manufacturer)
	r.set("BIOS Version", b.SMBIOSBIOSVersion)
	r.set("Release Date", cimDate(b.ReleaseDate))
	r.set("Serial Number", b.SerialNumber)
}

// cimDate turns a CIM datetime such as "20230915000000.000000+000" into
// "2023-09-15". Values that do not start with eight digits are returned as is.
func cimDate(s string) string {
	if len(s) < 8 {
		return s
	}
	for _, c := range s[:8] {
		if c < '0' || c > '9' {
			return s
		}
	}
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
}
