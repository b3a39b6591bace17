package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-tangra/go-tangra-pcinfo/internal/collector"
)

// About writes the static description of the tool.
func About(w io.Writer, version string) error {
	_, err := fmt.Fprintf(w, `pcinfo %s

Collects a read-only hardware and software inventory of this machine and
prints it as tables, JSON or YAML.

Categories: %s

Values a platform cannot supply are shown as %q. Categories that have no
meaning on the running platform are reported as not supported.
`, version, strings.Join(collector.Categories, ", "), collector.Placeholder)
	return err
}
