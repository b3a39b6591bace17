package report

import "github.com/go-tangra/go-tangra-pcinfo/internal/collector"

// Pad returns seq extended with the placeholder up to length n. It never
// truncates and never modifies seq.
func Pad(seq []string, n int) []string {
	out := make([]string, max(len(seq), n))
	copy(out, seq)
	for i := len(seq); i < len(out); i++ {
		out[i] = collector.Placeholder
	}
	return out
}

// Align pads every sequence to the length of the longest one.
func Align(seqs ...[]string) [][]string {
	n := 0
	for _, s := range seqs {
		n = max(n, len(s))
	}
	out := make([][]string, len(seqs))
	for i, s := range seqs {
		out[i] = Pad(s, n)
	}
	return out
}

// mismatched reports whether the sequences differ in length.
func mismatched(seqs ...[]string) bool {
	if len(seqs) < 2 {
		return false
	}
	for _, s := range seqs[1:] {
		if len(s) != len(seqs[0]) {
			return true
		}
	}
	return false
}
