package dump

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/broady/objcgo/bridgegen"
	"github.com/broady/objcgo/bridgegen/decl"
)

type Cmd struct {
	Input   string `arg:"" help:"Declaration tree (JSON) produced by the clang front end." type:"existingfile"`
	Tables  string `help:"YAML or TOML tables file overlaid on the defaults." short:"t" type:"existingfile"`
	Compact bool   `help:"Print without indentation."`
}

func (c *Cmd) Run(logger *slog.Logger) error {
	root, err := decl.ReadFile(c.Input)
	if err != nil {
		return err
	}
	schema, err := bridgegen.Check(root, &bridgegen.Config{TablesFile: c.Tables, Logger: logger})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	if !c.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(schema)
}
