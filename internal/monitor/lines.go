package monitor

import "bytes"

// ScanTerminalLines is a bufio.SplitFunc that ends lines at '\n' or '\r'.
// dd redraws its progress line with carriage returns, so each redraw becomes
// its own token. "\r\n" yields an empty token which callers skip.
func ScanTerminalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
