package collector

import (
	"fmt"
	"strconv"
)

var cpuFields = []string{
	"CPU Name",
	"Serial Number",
	"Logical Processors",
	"Physical Processors",
	"Architecture",
	"Current Clock Speed",
	"Max Clock Speed",
	"L1 Cache",
	"L2 Cache",
	"L3 Cache",
}

// probeCPU reports the processor model, counts, clocks and caches. On
// Windows the processor ID, clocks and L2/L3 sizes come from Win32_Processor.
func probeCPU(env *probeEnv, r *Result) {
	spec, err := env.host.CPU()
	r.set("CPU Name", spec.Name)
	r.set("Architecture", spec.Arch)
	r.set("Logical Processors", count(spec.Logical))
	r.set("Physical Processors", count(spec.Physical))
	r.set("Current Clock Speed", mhz(spec.CurrentMHz))
	r.set("Max Clock Speed", mhz(spec.MaxMHz))
	r.set("L1 Cache", spec.L1Cache)
	r.set("L2 Cache", spec.L2Cache)
	r.set("L3 Cache", spec.L3Cache)
	r.warn(err)

	inst, err := env.instrumentation()
	if err != nil {
		r.warn(err)
		return
	}
	var rows []win32Processor
	if err := inst.Query(queryProcessor, &rows); err != nil {
		r.warn(queryFailed("Win32_Processor", err))
		return
	}
	if len(rows) == 0 {
		r.warn(queryFailed("Win32_Processor", errNoInstances))
		return
	}
	p := rows[0]
	r.set("Serial Number", p.ProcessorId)
	if p.CurrentClockSpeed > 0 {
		r.set("Current Clock Speed", mhz(float64(p.CurrentClockSpeed)))
	}
	if p.MaxClockSpeed > 0 {
		r.set("Max Clock Speed", mhz(float64(p.MaxClockSpeed)))
	}
	if p.L2CacheSize > 0 {
		r.set("L2 Cache", fmt.Sprintf("%d KB", p.L2CacheSize))
	}
	if p.L3CacheSize > 0 {
		r.set("L3 Cache", fmt.Sprintf("%d KB", p.L3CacheSize))
	}
}

func count(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func mhz(v float64) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2f MHz", v)
}
