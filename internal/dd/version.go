package dd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var ErrInvalidVersion = errors.New("`dd --version` gave invalid output")

// Version is the major.minor release of the installed dd
type Version struct {
	Major uint16
	Minor uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ProbeVersion runs "<path> --version" and parses the first line it prints
func ProbeVersion(ctx context.Context, path string) (Version, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return Version{}, fmt.Errorf("failed to get dd's version: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	if !scanner.Scan() {
		return Version{}, ErrInvalidVersion
	}
	return ParseVersion(scanner.Text())
}

// ParseVersion extracts major.minor from a line such as
// "dd (GNU coreutils) 9.4": the token after the last '.' is the minor
// number and the token between the preceding space and that '.' is the major.
func ParseVersion(line string) (Version, error) {
	rest, minorText, found := cutLast(strings.TrimSpace(line), ".")
	if !found {
		return Version{}, ErrInvalidVersion
	}
	_, majorText, found := cutLast(rest, " ")
	if !found {
		return Version{}, ErrInvalidVersion
	}

	major, err := strconv.ParseUint(majorText, 10, 16)
	if err != nil {
		return Version{}, fmt.Errorf("%w: major %q", ErrInvalidVersion, majorText)
	}
	minor, err := strconv.ParseUint(minorText, 10, 16)
	if err != nil {
		return Version{}, fmt.Errorf("%w: minor %q", ErrInvalidVersion, minorText)
	}
	return Version{Major: uint16(major), Minor: uint16(minor)}, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
