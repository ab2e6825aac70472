package dd

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		line    string
		want    Version
		wantErr bool
	}{
		{line: "dd (coreutils) 9.4", want: Version{9, 4}},
		{line: "dd (GNU coreutils) 8.32", want: Version{8, 32}},
		{line: "  dd (GNU coreutils) 8.32  ", want: Version{8, 32}},
		{line: "uutils dd 0.0.1", wantErr: true},
		{line: "dd 1.2.3", wantErr: true},
		{line: "dd (coreutils) 9", wantErr: true},
		{line: "9.4", wantErr: true},
		{line: "dd (coreutils) x.4", wantErr: true},
		{line: "dd (coreutils) 70000.1", wantErr: true},
		{line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseVersion(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("ParseVersion(%q) error = %v, want ErrInvalidVersion", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	if got := (Version{Major: 9, Minor: 4}).String(); got != "9.4" {
		t.Errorf("String() = %q, want 9.4", got)
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "dd")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProbeVersion(t *testing.T) {
	path := writeScript(t, "echo 'dd (GNU coreutils) 9.4'\necho 'Copyright (C) 2023'\n")

	got, err := ProbeVersion(context.Background(), path)
	if err != nil {
		t.Fatalf("ProbeVersion() error = %v", err)
	}
	if got != (Version{9, 4}) {
		t.Errorf("ProbeVersion() = %v, want 9.4", got)
	}
}

func TestProbeVersionEmptyOutput(t *testing.T) {
	path := writeScript(t, "exit 0\n")

	if _, err := ProbeVersion(context.Background(), path); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("ProbeVersion() error = %v, want ErrInvalidVersion", err)
	}
}

func TestProbeVersionMissingBinary(t *testing.T) {
	_, err := ProbeVersion(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing dd")
	}
}
