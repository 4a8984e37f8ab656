package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	usage(&buf)
	out := buf.String()
	for name := range subcommands {
		if !strings.Contains(out, "  "+name+" ") {
			t.Errorf("subcommand %q not listed:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "-home") {
		t.Errorf("home flag not listed:\n%s", out)
	}
}
