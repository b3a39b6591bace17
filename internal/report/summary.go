package report

import "github.com/go-tangra/go-tangra-pcinfo/internal/collector"

// headlines maps each category to the field shown in the summary, in
// summary order.
var headlines = []struct {
	category string
	field    string
}{
	{collector.CategorySystem, "System"},
	{collector.CategoryCPU, "CPU Name"},
	{collector.CategoryMemory, "Total Memory (GB)"},
	{collector.CategoryDisk, "Total Space (GB)"},
	{collector.CategoryBIOS, "BIOS Version"},
	{collector.CategoryNetwork, "Primary IP Address"},
	{collector.CategoryMotherboard, "Product"},
	{collector.CategoryPeripherals, "Mouse"},
	{collector.CategoryVideo, "Primary Adapter"},
	{collector.CategoryMonitor, "Primary Monitor"},
	{collector.CategoryAudio, "Audio Device"},
}

// HeadlineField returns the summary field of category.
func HeadlineField(category string) (string, bool) {
	for _, h := range headlines {
		if h.category == category {
			return h.field, true
		}
	}
	return "", false
}

// Summarize picks one headline value per category, substituting the
// placeholder for missing categories or fields.
func Summarize(rep *collector.Report) []SummaryRow {
	rows := make([]SummaryRow, 0, len(headlines))
	for _, h := range headlines {
		value := collector.Placeholder
		if res, ok := rep.Result(h.category); ok {
			if v, ok := res.Fields.Get(h.field); ok && v != "" {
				value = v
			}
		}
		rows = append(rows, SummaryRow{Category: h.category, Value: value})
	}
	return rows
}
