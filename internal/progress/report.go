package progress

import (
	"strconv"
	"strings"
)

// Report is one progress update emitted by dd on its diagnostic stream
type Report struct {
	Bytes      uint64  // Cumulative bytes copied
	Elapsed    float32 // Seconds since the copy started
	Throughput string  // Rate label exactly as dd printed it, e.g. "419 kB/s"
}

// Parse extracts a Report from a line shaped like
// "<bytes> <text>, <elapsed> s, <throughput>".
// The second return value is false for anything else; dd interleaves
// progress with free-form messages, so a miss is not an error.
func Parse(line string) (Report, bool) {
	head, _, found := strings.Cut(line, " ")
	if !found {
		return Report{}, false
	}
	// A single leading '+' is a valid unsigned count; ParseUint rejects it
	if rest, ok := strings.CutPrefix(head, "+"); ok {
		head = rest
	}
	bytes, err := strconv.ParseUint(head, 10, 64)
	if err != nil {
		return Report{}, false
	}

	i := strings.LastIndexByte(line, ',')
	if i < 0 {
		return Report{}, false
	}
	rest := strings.TrimSpace(line[:i])
	throughput := strings.TrimSpace(line[i+1:])

	j := strings.LastIndexByte(rest, ',')
	if j < 0 {
		return Report{}, false
	}
	secs, found := strings.CutSuffix(strings.TrimSpace(rest[j+1:]), " s")
	if !found || !isDecimalFloat(secs) {
		return Report{}, false
	}
	elapsed, err := strconv.ParseFloat(secs, 32)
	if err != nil {
		return Report{}, false
	}

	return Report{
		Bytes:      bytes,
		Elapsed:    float32(elapsed),
		Throughput: throughput,
	}, true
}

// isDecimalFloat rejects the Go-only float syntaxes ParseFloat would
// otherwise accept: hexadecimal mantissas and digit separators
func isDecimalFloat(s string) bool {
	return !strings.ContainsAny(s, "_xX")
}

// Ratio returns bytes/total as a fraction (1.0 is complete). It is not
// clamped: a source that grew after it was measured yields values above 1.
// ok is false when total is zero and no ratio can be given.
func (r Report) Ratio(total uint64) (ratio float64, ok bool) {
	if total == 0 {
		return 0, false
	}
	return float64(r.Bytes) / float64(total), true
}
