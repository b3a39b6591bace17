// Package render writes a report.RenderModel in one of the supported
// output formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kratos/kratos/v2/encoding"
	_ "github.com/go-kratos/kratos/v2/encoding/yaml"
	"github.com/go-kratos/kratos/v2/errors"

	_ "github.com/go-tangra/go-tangra-pcinfo/internal/codec"
	"github.com/go-tangra/go-tangra-pcinfo/internal/report"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists every format New accepts.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New(400, "UNKNOWN_FORMAT", "unknown output format")

// Renderer writes a render model to w.
type Renderer interface {
	Render(w io.Writer, m *report.RenderModel) error
}

// New returns the renderer for format. An empty format selects the table.
func New(format string) (Renderer, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", FormatTable:
		return tableRenderer{}, nil
	case FormatJSON, FormatYAML:
		c := encoding.GetCodec(f)
		if c == nil {
			return nil, ErrUnknownFormat.WithCause(fmt.Errorf("no %s codec registered", f))
		}
		return codecRenderer{codec: c}, nil
	default:
		return nil, ErrUnknownFormat.WithMetadata(map[string]string{
			"format":    format,
			"supported": strings.Join(Formats, ","),
		})
	}
}

// codecRenderer marshals the whole model with a kratos codec.
type codecRenderer struct {
	codec encoding.Codec
}

func (r codecRenderer) Render(w io.Writer, m *report.RenderModel) error {
	data, err := r.codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.codec.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", r.codec.Name(), err)
	}
	return nil
}
