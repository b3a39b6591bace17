package collector

import (
	"strconv"
	"strings"
)

var monitorFields = []string{
	"Monitors",
	"Primary Monitor",
}

var monitorColumns = []string{
	"Name",
	"Screen Height",
	"Screen Width",
	"Status",
}

func probeMonitor(env *probeEnv, r *Result) {
	inst, err := env.instrumentation()
	if err != nil {
		r.fail(err)
		return
	}

	var rows []win32DesktopMonitor
	if err := inst.Query(queryDesktopMonitor, &rows); err != nil {
		r.fail(queryFailed("Win32_DesktopMonitor", err))
		return
	}

	for _, m := range rows {
		var row Fields
		row.Set("Name", strings.TrimSpace(m.Name))
		if m.ScreenHeight > 0 {
			row.Set("Screen Height", strconv.FormatUint(uint64(m.ScreenHeight), 10))
		}
		if m.ScreenWidth > 0 {
			row.Set("Screen Width", strconv.FormatUint(uint64(m.ScreenWidth), 10))
		}
		if m.Status != "" {
			row.Set("Status", m.Status)
		}
		r.Rows = append(r.Rows, row)
	}

	r.set("Monitors", strconv.Itoa(len(r.Rows)))
	if len(r.Rows) > 0 {
		r.set("Primary Monitor", r.Rows[0][0].Value)
	}
}
