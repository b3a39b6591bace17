package collector

import "time"

// Placeholder stands in for any value a probe could not supply.
const Placeholder = "N/A"

// Category names, in report order.
const (
	CategorySystem      = "System"
	CategoryCPU         = "CPU"
	CategoryMemory      = "Memory"
	CategoryDisk        = "Disk"
	CategoryBIOS        = "BIOS"
	CategoryNetwork     = "Network"
	CategoryMotherboard = "Motherboard"
	CategoryPeripherals = "Peripherals"
	CategoryVideo       = "Video"
	CategoryMonitor     = "Monitor"
	CategoryAudio       = "Audio"
)

// Categories lists every category in the order probes run and reports render.
var Categories = []string{
	CategorySystem,
	CategoryCPU,
	CategoryMemory,
	CategoryDisk,
	CategoryBIOS,
	CategoryNetwork,
	CategoryMotherboard,
	CategoryPeripherals,
	CategoryVideo,
	CategoryMonitor,
	CategoryAudio,
}

// Status tags the outcome of a single probe.
type Status int

const (
	// StatusOK means every source the probe relies on answered.
	StatusOK Status = iota
	// StatusPartial means the category is supported but at least one query failed.
	StatusPartial
	// StatusUnavailable means the category is not supported on this platform.
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPartial:
		return "partial"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Field is a single labelled value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields is an ordered list of labelled values.
type Fields []Field

// newFields returns the declared labels, each holding the placeholder.
func newFields(labels ...string) Fields {
	f := make(Fields, len(labels))
	for i, l := range labels {
		f[i] = Field{Label: l, Value: Placeholder}
	}
	return f
}

// Get returns the value stored under label.
func (f Fields) Get(label string) (string, bool) {
	for _, fd := range f {
		if fd.Label == label {
			return fd.Value, true
		}
	}
	return "", false
}

// Set overwrites the value under label, appending it when absent.
// Empty values are stored as the placeholder.
func (f *Fields) Set(label, value string) {
	if value == "" {
		value = Placeholder
	}
	for i := range *f {
		if (*f)[i].Label == label {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Label: label, Value: value})
}

// Labels returns the labels in order.
func (f Fields) Labels() []string {
	out := make([]string, len(f))
	for i, fd := range f {
		out[i] = fd.Label
	}
	return out
}

// Values returns the values in label order.
func (f Fields) Values() []string {
	out := make([]string, len(f))
	for i, fd := range f {
		out[i] = fd.Value
	}
	return out
}

// Result is the outcome of one probe.
//
// Row categories (Disk, Network, Video, Monitor) also carry one Fields entry
// per item. Rows may have differing key sets; Columns lists the keys every
// row is expected to render under.
type Result struct {
	Category string   `json:"category"`
	Status   Status   `json:"status"`
	Fields   Fields   `json:"fields"`
	Columns  []string `json:"columns,omitempty"`
	Rows     []Fields `json:"rows,omitempty"`
	Note     string   `json:"note,omitempty"`
}

// Report holds the results of one collection run.
type Report struct {
	ID          string    `json:"id"`
	Hostname    string    `json:"hostname"`
	CollectedAt time.Time `json:"collected_at"`
	Results     []Result  `json:"results"`
}

// Result returns the probe result for category.
func (r *Report) Result(category string) (Result, bool) {
	for _, res := range r.Results {
		if res.Category == category {
			return res, true
		}
	}
	return Result{}, false
}
