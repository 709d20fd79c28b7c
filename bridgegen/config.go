package bridgegen

import (
	"log/slog"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/broady/objcgo"
	"github.com/broady/objcgo/bridgegen/sink"
	"github.com/broady/objcgo/bridgegen/tables"
)

// Emitter names accepted in Config.Emitters.
const (
	EmitterShim = "shim"
	EmitterGo   = "go"
)

var (
	validate      = objcgo.NewValidator()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// Config holds the configuration for bridge generation.
type Config struct {
	// Package is the Go package name of the wrapper. Generated file names
	// derive from it: <pkg>.go, <pkg>_runtime.go, <pkg>_shim.h, <pkg>_shim.m.
	// Default: "cocoa"
	Package string `schema:"package" validate:"required,goident"`

	// Headers are imported by the shim header.
	// Default: ["Cocoa/Cocoa.h"]
	Headers []string `schema:"header" validate:"dive,required"`

	// CFlags and LDFlags are written to the cgo preamble.
	// Default: ["-x", "objective-c"] and ["-framework", "Foundation", "-framework", "AppKit"]
	CFlags  []string `schema:"cflags"`
	LDFlags []string `schema:"ldflags"`

	// Emitters selects the outputs, by name.
	// Default: ["shim", "go"]
	Emitters []string `schema:"emitter" validate:"dive,oneof=shim go"`

	// OutDir is the directory generated files are written to. Ignored when
	// Sink is set; when both are empty files are kept in memory.
	OutDir string `schema:"out"`

	// NoOverwrite makes writing to an existing file in OutDir an error.
	NoOverwrite bool `schema:"no_overwrite"`

	// TablesFile overlays a YAML or TOML tables file on the defaults.
	// Ignored when Tables is set.
	TablesFile string `schema:"tables"`

	// Tables replaces the configuration tables.
	Tables *tables.Tables `schema:"-" validate:"-"`

	// Sink receives the generated files.
	Sink sink.OutputSink `schema:"-" validate:"-"`

	// Logger receives progress records. Default: slog.Default()
	Logger *slog.Logger `schema:"-" validate:"-"`
}

// ParseOptions decodes key=value options into a Config. Keys are the schema
// tags of Config; list options repeat the key. Unknown keys are ignored.
func ParseOptions(values url.Values) (*Config, error) {
	var cfg Config
	if err := schemaDecoder.Decode(&cfg, values); err != nil {
		return nil, objcgo.Errorf(objcgo.CodeInvalidArgument, "decoding options: %v", err)
	}
	return &cfg, nil
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	// Make a copy to avoid mutating the input
	result := *cfg

	if result.Package == "" {
		result.Package = "cocoa"
	}
	if result.Headers == nil {
		result.Headers = []string{"Cocoa/Cocoa.h"}
	}
	if result.CFlags == nil {
		result.CFlags = []string{"-x", "objective-c"}
	}
	if result.LDFlags == nil {
		result.LDFlags = []string{"-framework", "Foundation", "-framework", "AppKit"}
	}
	if len(result.Emitters) == 0 {
		result.Emitters = []string{EmitterShim, EmitterGo}
	}
	if result.Logger == nil {
		result.Logger = slog.Default()
	}

	return &result
}
