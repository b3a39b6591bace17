package collector

import (
	"bufio"
	"fmt"
	"strings"
)

// Record is one block of "key: value" lines.
type Record struct {
	Fields
}

// ParseRecords splits colon-separated tool output into records. Records are
// separated by blank lines; lines without a colon are ignored, and keys keep
// their first value. Trailing carriage returns are stripped. On a scan error
// the records read so far are returned with the error.
func ParseRecords(out string) ([]Record, error) {
	var (
		records []Record
		cur     Record
	)
	flush := func() {
		if len(cur.Fields) > 0 {
			records = append(records, cur)
		}
		cur = Record{}
	}

	sc := bufio.NewScanner(strings.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, seen := cur.Get(key); seen {
			continue
		}
		cur.Fields = append(cur.Fields, Field{Label: key, Value: strings.TrimSpace(value)})
	}
	flush()
	if err := sc.Err(); err != nil {
		return records, fmt.Errorf("parse records: %w", err)
	}
	return records, nil
}

// Lookup returns the value under the first of keys present in the record.
func (r Record) Lookup(keys ...string) string {
	for _, k := range keys {
		if v, ok := r.Get(k); ok && v != "" {
			return v
		}
	}
	return ""
}
