package render

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/go-tangra/go-tangra-pcinfo/internal/collector"
	"github.com/go-tangra/go-tangra-pcinfo/internal/report"
)

const notSupported = "Not supported on this platform"

type tableRenderer struct{}

// Render prints the summary table followed by one block per category.
func (tableRenderer) Render(w io.Writer, m *report.RenderModel) error {
	ew := &errWriter{w: w}

	fmt.Fprintf(ew, "PC Information: %s (collected %s, run %s)\n\n",
		m.Hostname, m.CollectedAt.Local().Format(time.RFC1123), m.ReportID)

	fmt.Fprintln(ew, "Summary")
	summary := newTable(ew, []string{"Category", "Value"})
	for _, row := range m.Summary {
		summary.Append([]string{row.Category, row.Value})
	}
	summary.Render()

	for i := range m.Sections {
		writeSection(ew, &m.Sections[i])
	}
	return ew.err
}

func writeSection(w io.Writer, s *report.Section) {
	fmt.Fprintf(w, "\n%s\n", s.Category)

	if s.Status == collector.StatusUnavailable.String() {
		fmt.Fprintln(w, notSupported)
		return
	}

	writeTable(w, s.Details)
	if s.Items != nil {
		if len(s.Items.Rows) == 0 {
			fmt.Fprintf(w, "No %s items found\n", s.Category)
		} else {
			writeTable(w, *s.Items)
		}
	}
	if s.Status == collector.StatusPartial.String() && s.Note != "" {
		fmt.Fprintf(w, "Error: %s\n", s.Note)
	}
}

func writeTable(w io.Writer, t report.Table) {
	tw := newTable(w, t.Columns)
	tw.AppendBulk(t.Rows)
	tw.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return t
}

// errWriter remembers the first write error; tablewriter discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
