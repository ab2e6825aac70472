package utils

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatFileSize formats a byte count with SI units, e.g. "1.0 MB"
func FormatFileSize(bytes uint64) string {
	return humanize.Bytes(bytes)
}

// FormatRatio renders a completion ratio (1.0 == done) as a percentage.
// ok=false means the ratio is unknown and renders as "--%".
func FormatRatio(ratio float64, ok bool) string {
	if !ok {
		return "--%"
	}
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// FormatSeconds prints seconds with the shortest exact representation, e.g. "2.5"
func FormatSeconds(secs float32) string {
	return strconv.FormatFloat(float64(secs), 'f', -1, 32)
}
