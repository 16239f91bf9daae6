package main

import (
	"context"
	"log"
	"os"

	"github.com/aposenior/gestao/core"
	sheetstore "github.com/aposenior/gestao/storage/sheet"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.LoadConfig()
	if conf.Spreadsheet.ID == "" {
		logger.Fatal("no spreadsheet configured")
	}
	store, err := sheetstore.NewStore(context.Background(), conf.Spreadsheet.ID, conf.Spreadsheet.CredentialsFile)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		store: store,
		out:   os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
