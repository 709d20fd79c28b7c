package gen

import (
	"slices"
	"testing"

	"github.com/broady/objcgo/bridgegen/sink"
)

func TestCmd_Config(t *testing.T) {
	c := &Cmd{
		Out:     "out",
		Package: "appkit",
		Header:  []string{"AppKit/AppKit.h"},
		Set:     []string{"package=ignored", "cflags=-fobjc-arc", "cflags=-x", "emitter=go"},
	}
	cfg, err := c.config()
	if err != nil {
		t.Fatalf("config() error = %v", err)
	}
	if cfg.Package != "appkit" {
		t.Errorf("Package = %q, want %q", cfg.Package, "appkit")
	}
	if want := []string{"AppKit/AppKit.h"}; !slices.Equal(cfg.Headers, want) {
		t.Errorf("Headers = %v, want %v", cfg.Headers, want)
	}
	if want := []string{"-fobjc-arc", "-x"}; !slices.Equal(cfg.CFlags, want) {
		t.Errorf("CFlags = %v, want %v", cfg.CFlags, want)
	}
	if want := []string{"go"}; !slices.Equal(cfg.Emitters, want) {
		t.Errorf("Emitters = %v, want %v", cfg.Emitters, want)
	}
	if cfg.OutDir != "out" {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, "out")
	}
	if cfg.Sink != nil {
		t.Errorf("Sink = %v, want nil", cfg.Sink)
	}
}

func TestCmd_ConfigOutOption(t *testing.T) {
	c := &Cmd{Out: ".", Set: []string{"out=build/cocoa"}}
	cfg, err := c.config()
	if err != nil {
		t.Fatalf("config() error = %v", err)
	}
	if cfg.OutDir != "build/cocoa" {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, "build/cocoa")
	}
}

func TestCmd_ConfigStdout(t *testing.T) {
	cfg, err := (&Cmd{Out: ".", Stdout: true}).config()
	if err != nil {
		t.Fatalf("config() error = %v", err)
	}
	if _, ok := cfg.Sink.(*sink.StreamSink); !ok {
		t.Errorf("Sink = %T, want *sink.StreamSink", cfg.Sink)
	}
	if cfg.OutDir != "" {
		t.Errorf("OutDir = %q, want empty", cfg.OutDir)
	}
}

func TestCmd_ConfigBadSet(t *testing.T) {
	for _, kv := range []string{"package", "=cocoa"} {
		if _, err := (&Cmd{Set: []string{kv}}).config(); err == nil {
			t.Errorf("config() with --set %q error = nil, want error", kv)
		}
	}
}
