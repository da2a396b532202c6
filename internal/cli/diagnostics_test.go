package cli

import (
	"testing"
)

func TestGenDiagnosticsCommand_Structure(t *testing.T) {
	cmd := genDiagnosticsCommand()
	if cmd.Name != "diagnostics" {
		t.Errorf("expected command name 'diagnostics', got '%s'", cmd.Name)
	}
	if !cmd.Hidden {
		t.Error("expected diagnostics command to be hidden")
	}
	if len(cmd.Subcommands) != 1 {
		t.Errorf("expected 1 subcommand, got %d", len(cmd.Subcommands))
	}
	sub := cmd.Subcommands[0]
	if sub.Name != "engine" {
		t.Errorf("expected subcommand 'engine', got '%s'", sub.Name)
	}
	if sub.Action == nil {
		t.Error("expected subcommand to have an action")
	}
}

func TestCheckEngine(t *testing.T) {
	if err := checkEngine(); err != nil {
		t.Errorf("expected engine self check to pass, got %v", err)
	}
}

func TestDiagnosticsEngine_Run(t *testing.T) {
	out, err := runApp(t, "--log-level", "error", "diagnostics", "engine")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "engine ok\n" {
		t.Errorf("unexpected output %q", out)
	}
}

