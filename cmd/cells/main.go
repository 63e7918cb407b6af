package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	summary = "cells"
	help    = "compute spreadsheet tables of cell formulas"
)

func main() {
	var (
		set  = cli.NewFlagSet("cells")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"check"}, &checkCmd)
	root.Register([]string{"eval"}, &evalCmd)
	root.Register([]string{"export"}, &exportCmd)

	return root
}

var checkCmd = cli.Command{
	Name:    "check",
	Alias:   []string{"lint"},
	Summary: "parse a table and verify its cell references can be ordered",
	Usage:   "check <table>",
	Handler: &CheckTableCommand{},
}

var evalCmd = cli.Command{
	Name:    "eval",
	Alias:   []string{"compute"},
	Summary: "evaluate every cell of a table and print the results as csv",
	Usage:   "eval [-o file] [-q] <table>",
	Handler: &EvalTableCommand{},
}

var exportCmd = cli.Command{
	Name:    "export",
	Summary: "evaluate a table and write the results to a xlsx workbook",
	Usage:   "export -o file.xlsx <table>",
	Handler: &ExportTableCommand{},
}
