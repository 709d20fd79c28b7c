package check

import (
	"fmt"
	"log/slog"

	"github.com/broady/objcgo/bridgegen"
	"github.com/broady/objcgo/bridgegen/decl"
)

type Cmd struct {
	Input  string `arg:"" help:"Declaration tree (JSON) produced by the clang front end." type:"existingfile"`
	Tables string `help:"YAML or TOML tables file overlaid on the defaults." short:"t" type:"existingfile"`
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

	st := schema.Stats()
	fmt.Printf("✓ %d classes, %d enums, %d typedefs\n", st.Classes, len(schema.Enums), len(schema.Typedefs))
	fmt.Printf("✓ %d methods: %d bridged, %d commented out\n", st.Methods, st.Accepted, st.Rejected)
	if st.Undeclared > 0 {
		fmt.Printf("✓ %d undeclared classes get skeleton wrappers\n", st.Undeclared)
	}
	for _, w := range schema.Warnings {
		fmt.Printf("! %s\n", w)
	}
	return nil
}
