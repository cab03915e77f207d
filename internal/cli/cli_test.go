package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{
		"counties": false,
		"county":   false,
		"totals":   false,
		"alerts":   false,
		"meter":    false,
	}
	for _, sub := range root.Commands() {
		name := strings.Fields(sub.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestCountiesCmd(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"counties"})

	if err := root.Execute(); err != nil {
		t.Fatalf("counties command failed: %v", err)
	}

	for _, county := range []string{"BUCKS", "CHESTER", "DELAWARE", "MONTGOMERY", "PHILADELPHIA", "YORK"} {
		if !strings.Contains(out.String(), county) {
			t.Errorf("expected %s in output, got:\n%s", county, out.String())
		}
	}
}

func TestCountyCmd_InvalidCounty(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"county", "LANCASTER"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for invalid county, got nil")
	}
	if !strings.Contains(err.Error(), "not a valid county") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCountyCmd_InvalidFormat(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"county", "BUCKS", "--format", "yaml"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for invalid format, got nil")
	}
}
