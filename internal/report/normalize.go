package report

import (
	"slices"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/go-tangra/go-tangra-pcinfo/internal/collector"
)

// Normalizer turns a collector.Report into a RenderModel.
type Normalizer struct {
	log *log.Helper
}

// NewNormalizer creates a Normalizer. A nil logger discards output.
func NewNormalizer(logger log.Logger) *Normalizer {
	if logger == nil {
		return &Normalizer{}
	}
	return &Normalizer{log: log.NewHelper(log.With(logger, "module", "report"))}
}

// Normalize is shorthand for NewNormalizer(nil).Normalize.
func Normalize(rep *collector.Report) *RenderModel {
	return NewNormalizer(nil).Normalize(rep)
}

// Normalize builds one section per category in fixed order plus the summary.
// Categories missing from rep get a section of placeholders.
func (n *Normalizer) Normalize(rep *collector.Report) *RenderModel {
	m := &RenderModel{
		ReportID:    rep.ID,
		Hostname:    rep.Hostname,
		CollectedAt: rep.CollectedAt,
		Summary:     Summarize(rep),
		Sections:    make([]Section, 0, len(collector.Categories)),
	}

	for _, category := range collector.Categories {
		res, ok := rep.Result(category)
		if !ok {
			res = collector.Result{
				Category: category,
				Status:   collector.StatusPartial,
				Note:     "no result collected",
			}
		}
		m.Sections = append(m.Sections, n.section(res))
	}
	return m
}

func (n *Normalizer) section(res collector.Result) Section {
	s := Section{
		Category: res.Category,
		Status:   res.Status.String(),
		Note:     res.Note,
		Details:  n.details(res),
	}
	if columns := collector.DeclaredColumns(res.Category); len(columns) > 0 || len(res.Rows) > 0 {
		items := n.items(res, columns)
		s.Items = &items
	}
	return s
}

// details renders the fields as a two-column table, ensuring every declared
// label is present.
func (n *Normalizer) details(res collector.Result) Table {
	fields := append(collector.Fields(nil), res.Fields...)
	for _, label := range collector.DeclaredFields(res.Category) {
		if _, ok := fields.Get(label); !ok {
			fields = append(fields, collector.Field{Label: label, Value: collector.Placeholder})
		}
	}

	labels, values := fields.Labels(), fields.Values()
	cols := n.align(res.Category, labels, values)

	t := Table{Name: res.Category, Columns: []string{"Category", "Information"}}
	for i := range cols[0] {
		t.Rows = append(t.Rows, []string{cols[0][i], cols[1][i]})
	}
	return t
}

// items renders heterogeneous rows under the declared columns plus any extra
// keys in first-seen order. Missing cells hold the placeholder.
func (n *Normalizer) items(res collector.Result, declared []string) Table {
	columns := slices.Clone(declared)
	for _, row := range res.Rows {
		for _, f := range row {
			if !slices.Contains(columns, f.Label) {
				columns = append(columns, f.Label)
			}
		}
	}

	t := Table{Name: res.Category + " Items", Columns: columns}
	for _, row := range res.Rows {
		t.Rows = append(t.Rows, n.align(res.Category, columns, n.fill(row, columns))[1])
	}
	return t
}

// fill lays row out under columns, leaving the placeholder where a key is
// absent.
func (n *Normalizer) fill(row collector.Fields, columns []string) []string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		if v, ok := row.Get(c); ok {
			cells[i] = v
		} else {
			cells[i] = collector.Placeholder
		}
	}
	return cells
}

func (n *Normalizer) align(category string, seqs ...[]string) [][]string {
	if mismatched(seqs...) && n.log != nil {
		n.log.Debugw("msg", collector.ErrShapeMismatch.Message, "category", category)
	}
	return Align(seqs...)
}
