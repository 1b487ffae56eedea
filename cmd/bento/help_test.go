package main

// Notes:
// - Usage printers: required strings only, not exact formatting.
// - runHelp: routing to the right topic, unknown topics go to stderr.

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, cmd := range getCommands() {
		if !strings.Contains(buf.String(), "  "+cmd.Name+" ") {
			t.Errorf("usage does not list command %q", cmd.Name)
		}
	}
}

// Every flag of a FlagSet should be documented in its usage text.
func TestUsage_DocumentsAllFlags(t *testing.T) {
	t.Parallel()

	for _, cmd := range getCommands() {
		if len(cmd.Flags) == 0 {
			continue
		}
		t.Run(cmd.Name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := newTestEnv()
			runHelp([]string{cmd.Name}, env)

			for _, f := range cmd.Flags {
				if !strings.Contains(stdout.String(), "--"+f.Long) {
					t.Errorf("help %s does not mention --%s", cmd.Name, f.Long)
				}
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{"no topic", nil, "Usage: bento <command>", ""},
		{"render", []string{"render"}, "Usage: bento render", ""},
		{"watch", []string{"watch"}, "Usage: bento watch", ""},
		{"lint", []string{"lint"}, "Usage: bento lint", ""},
		{"completion", []string{"completion"}, "Usage: bento completion", ""},
		{"version", []string{"version"}, "Usage: bento version", ""},
		{"unknown", []string{"publish"}, "", "Unknown command: publish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			runHelp(tt.args, env)

			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}
