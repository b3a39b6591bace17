package collector

import "fmt"

var memoryFields = []string{
	"Total Memory (GB)",
	"Available Memory (GB)",
	"Used Memory (GB)",
	"Memory Usage (%)",
}

func probeMemory(env *probeEnv, r *Result) {
	m, err := env.host.Memory()
	if err != nil {
		r.fail(err)
		return
	}
	r.set("Total Memory (GB)", gib(m.Total))
	r.set("Available Memory (GB)", gib(m.Available))
	r.set("Used Memory (GB)", gib(m.Used))
	r.set("Memory Usage (%)", fmt.Sprintf("%.1f", m.UsedPercent))
}

// gib formats a byte count as gibibytes with two decimals.
func gib(b uint64) string {
	return fmt.Sprintf("%.2f", float64(b)/(1<<30))
}
