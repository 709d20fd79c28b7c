package tables

import (
	"os"

	"github.com/broady/objcgo/bridgegen/tables"
)

type Cmd struct {
	Format string `help:"Output format." enum:"yaml,toml" default:"yaml" short:"f"`
	Tables string `help:"Tables file to overlay on the defaults before printing." short:"t" type:"existingfile"`
}

func (c *Cmd) Run() error {
	t := tables.Default()
	if c.Tables != "" {
		var err error
		if t, err = tables.Load(c.Tables); err != nil {
			return err
		}
	}
	return t.Encode(os.Stdout, c.Format)
}
