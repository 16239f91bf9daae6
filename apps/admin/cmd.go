package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/class"
	"github.com/aposenior/gestao/core/client"
	"github.com/aposenior/gestao/core/subject"
	"github.com/aposenior/gestao/core/teacher"
)

var errHelp = errors.New("help provided")

// collections maps every worksheet to its header row.
var collections = map[string][]string{
	client.SheetName:  client.Columns,
	teacher.SheetName: teacher.Columns,
	subject.SheetName: subject.Columns,
	class.SheetName:   class.Columns,
}

type commandLine struct {
	store core.Store
	out   io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  initsheets - create any missing worksheet with its header row")
	fmt.Println("  export -collection NAME - dump a collection as CSV to stdout")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportName := exportCmd.String("collection", "", "The collection to export (Utentes, Professores, Disciplinas or Turmas).")

	switch args[1] {
	case "initsheets":
		return cli.initSheets()
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportName == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportName)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) initSheets() error {
	ctx := context.Background()
	for name, columns := range collections {
		if err := cli.store.EnsureCollection(ctx, name, columns); err != nil {
			return err
		}
	}
	return nil
}

func (cli *commandLine) export(name string) error {
	if _, ok := collections[name]; !ok {
		return fmt.Errorf("%q: no such collection", name)
	}

	coll, err := cli.store.Load(context.Background(), name)
	if err != nil {
		return err
	}
	if len(coll.Columns) == 0 {
		coll.Columns = collections[name]
	}

	w := csv.NewWriter(cli.out)
	if err := w.Write(coll.Columns); err != nil {
		return err
	}
	for _, rec := range coll.Records {
		if err := w.Write(coll.Row(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
