package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default template",
			args: []string{"format", "--label", "A", "--x", "3.14159", "--y", "7"},
			want: "A | X: 3.14159 | Y: 7",
		},
		{
			name: "precision",
			args: []string{"format", "%s | X: %x.2 | Y: %y", "--label", "A", "--x", "3.14159", "--y", "7"},
			want: "A | X: 3.14 | Y: 7",
		},
		{
			name: "percent",
			args: []string{"format", "%s %p.0%", "--label", "slice", "--percent", "12.6", "--x", "0", "--y", "0"},
			want: "slice 13%",
		},
		{
			name: "time axis with date format",
			args: []string{"format", "%x", "--x", "2024-03-01T12:00:00Z", "--x-time", "--x-date", "%d.%m.%Y", "--y", "1"},
			want: "01.03.2024",
		},
		{
			name: "time axis default tick",
			args: []string{"format", "%x", "--x", "1709294400000", "--x-time", "--y", "1"},
			want: "2024-03-01 12:00:00",
		},
		{
			name: "tick decimals",
			args: []string{"format", "%y", "--x", "0", "--y", "2.5", "--tick-decimals", "2"},
			want: "2.50",
		},
		{
			name: "label absent",
			args: []string{"format", "%s: %y", "--x", "0", "--y", "2"},
			want: "%s: 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommandUsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hovertip.toml")
	cfg := "[tooltipOpts]\ncontent = \"%s at %x\"\nxDateFormat = \"%H:%M\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--config", path, "format", "--label", "A", "--x", "2024-03-01T12:30:00Z", "--x-time", "--y", "1")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got := strings.TrimSpace(out); got != "A at 12:30" {
		t.Errorf("got %q, want %q", got, "A at 12:30")
	}
}

func TestFormatCommandRejectsBadInput(t *testing.T) {
	if _, err := execute(t, "format", "%x", "--x", "1", "--y", "1", "--x-date", "%"); err == nil {
		t.Error("dangling % in date format should fail")
	}
	for _, n := range []string{"-1", "21", "1000000000"} {
		if _, err := execute(t, "format", "%x", "--x", "1", "--y", "1", "--tick-decimals", n); err == nil {
			t.Errorf("tick decimals %s should fail", n)
		}
	}
	if _, err := execute(t, "format", "%y", "--x", "1", "--y", "1", "--tick-decimals", "20"); err != nil {
		t.Errorf("tick decimals 20: %v", err)
	}
}
