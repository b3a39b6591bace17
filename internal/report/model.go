package report

import "time"

// Table is a named grid of cells. Every row has exactly len(Columns) cells.
type Table struct {
	Name    string     `json:"name" yaml:"name"`
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Section is the presentation of one category.
type Section struct {
	Category string `json:"category" yaml:"category"`
	Status   string `json:"status" yaml:"status"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
	Details  Table  `json:"details" yaml:"details"`
	Items    *Table `json:"items,omitempty" yaml:"items,omitempty"`
}

// SummaryRow carries the headline value of one category.
type SummaryRow struct {
	Category string `json:"category" yaml:"category"`
	Value    string `json:"value" yaml:"value"`
}

// RenderModel is the alignment-safe form of a report handed to renderers.
type RenderModel struct {
	ReportID    string       `json:"report_id" yaml:"report_id"`
	Hostname    string       `json:"hostname" yaml:"hostname"`
	CollectedAt time.Time    `json:"collected_at" yaml:"collected_at"`
	Summary     []SummaryRow `json:"summary" yaml:"summary"`
	Sections    []Section    `json:"sections" yaml:"sections"`
}

// Section returns the section for category.
func (m *RenderModel) Section(category string) (*Section, bool) {
	for i := range m.Sections {
		if m.Sections[i].Category == category {
			return &m.Sections[i], true
		}
	}
	return nil, false
}

// Keys returns every label the section renders: detail labels followed by
// item columns.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.Details.Rows))
	for _, row := range s.Details.Rows {
		keys = append(keys, row[0])
	}
	if s.Items != nil {
		keys = append(keys, s.Items.Columns...)
	}
	return keys
}

// Value returns the detail value stored under label.
func (s *Section) Value(label string) (string, bool) {
	for _, row := range s.Details.Rows {
		if row[0] == label {
			return row[1], true
		}
	}
	return "", false
}
