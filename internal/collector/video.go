package collector

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var videoFields = []string{
	"Adapters",
	"Primary Adapter",
}

var videoColumns = []string{
	"Name",
	"Video Processor",
	"Adapter RAM",
	"Driver Version",
}

// probeVideo lists display adapters from Win32_VideoController on Windows
// and from the PCI display class elsewhere.
func probeVideo(env *probeEnv, r *Result) {
	var gpus []GPU
	if env.windows() {
		inst, err := env.instrumentation()
		if err != nil {
			r.fail(err)
			return
		}
		var rows []win32VideoController
		if err := inst.Query(queryVideoController, &rows); err != nil {
			r.fail(queryFailed("Win32_VideoController", err))
			return
		}
		for _, v := range rows {
			gpus = append(gpus, GPU{
				Name:          v.Name,
				Processor:     v.VideoProcessor,
				MemoryBytes:   uint64(v.AdapterRAM),
				DriverVersion: v.DriverVersion,
			})
		}
	} else {
		var err error
		if gpus, err = env.host.GPUs(); err != nil {
			r.fail(err)
			return
		}
	}

	for _, g := range gpus {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			continue
		}
		row := Fields{{Label: "Name", Value: name}}
		if g.Processor != "" {
			row.Set("Video Processor", strings.TrimSpace(g.Processor))
		}
		if g.MemoryBytes > 0 {
			row.Set("Adapter RAM", humanize.IBytes(g.MemoryBytes))
		}
		if g.DriverVersion != "" {
			row.Set("Driver Version", g.DriverVersion)
		}
		r.Rows = append(r.Rows, row)
	}

	r.set("Adapters", strconv.Itoa(len(r.Rows)))
	if len(r.Rows) > 0 {
		r.set("Primary Adapter", r.Rows[0][0].Value)
	}
}
