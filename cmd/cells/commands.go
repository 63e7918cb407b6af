package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/cli"

	"github.com/midbel/cells/csv"
	"github.com/midbel/cells/table"
	"github.com/midbel/cells/xlsx"
)

type CheckTableCommand struct{}

func (c CheckTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("check")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return fmt.Errorf("invalid number of arguments")
	}
	t, err := table.LoadFile(set.Arg(0))
	if err != nil {
		return err
	}
	var bad int
	for _, pos := range t.Positions() {
		raw, _ := t.Input(pos)
		if _, ok := t.Expr(pos); ok || !strings.HasPrefix(strings.TrimSpace(raw), "=") {
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: formula does not parse: %s\n", pos, raw)
		bad++
	}
	if bad > 0 {
		return errFail
	}
	fmt.Printf("%s: %d cell(s) ok\n", set.Arg(0), t.Len())
	return nil
}

type EvalTableCommand struct {
	OutFile string
	Quote   bool
}

func (c EvalTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("eval")
	set.StringVar(&c.OutFile, "o", "", "write csv to output file")
	set.BoolVar(&c.Quote, "q", false, "quote every field")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return fmt.Errorf("invalid number of arguments")
	}
	t, err := table.LoadFile(set.Arg(0))
	if err != nil {
		return err
	}
	var out io.Writer = os.Stdout
	if c.OutFile != "" {
		f, err := os.Create(c.OutFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := csv.NewWriter(out)
	w.ForceQuote = c.Quote
	return w.EncodeTable(t)
}

type ExportTableCommand struct {
	OutFile string
}

func (c ExportTableCommand) Run(args []string) error {
	set := cli.NewFlagSet("export")
	set.StringVar(&c.OutFile, "o", "", "write workbook to output file")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return fmt.Errorf("invalid number of arguments")
	}
	if c.OutFile == "" {
		return fmt.Errorf("missing output file")
	}
	t, err := table.LoadFile(set.Arg(0))
	if err != nil {
		return err
	}
	return xlsx.Export(t, c.OutFile)
}
