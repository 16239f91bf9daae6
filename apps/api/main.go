package main

import (
	"context"
	"log"
	"os"

	echoapi "github.com/aposenior/gestao/apps/api/echo"
	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/class"
	"github.com/aposenior/gestao/core/client"
	"github.com/aposenior/gestao/core/subject"
	"github.com/aposenior/gestao/core/teacher"
	logsvc "github.com/aposenior/gestao/services/logger"
	inmemstore "github.com/aposenior/gestao/storage/inmem"
	sheetstore "github.com/aposenior/gestao/storage/sheet"
)

func main() {
	ctx := context.Background()
	conf := core.LoadConfig()
	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewConsoleLogger(std)
	}
	logger.Enable(!conf.Debug)

	// set up validation
	validate, translator := core.NewValidator()
	client.RegisterValidators(validate, translator)
	subject.RegisterValidators(validate, translator)
	class.RegisterValidators(validate, translator)

	// set up the backing store: the spreadsheet in QA|PROD, in-memory when
	// no spreadsheet is configured (local dev)
	var store core.Store
	if conf.Spreadsheet.ID != "" {
		sheets, err := sheetstore.NewStore(ctx, conf.Spreadsheet.ID, conf.Spreadsheet.CredentialsFile)
		if err != nil {
			logger.Fatal("connecting to spreadsheet", err)
		}
		store = sheets
	} else {
		logger.Warn("no spreadsheet configured; using the in-memory store")
		mem := inmemstore.NewStore()
		for name, columns := range map[string][]string{
			client.SheetName:  client.Columns,
			teacher.SheetName: teacher.Columns,
			subject.SheetName: subject.Columns,
			class.SheetName:   class.Columns,
		} {
			if err := mem.EnsureCollection(ctx, name, columns); err != nil {
				logger.Fatal("initializing in-memory store", err)
			}
		}
		store = mem
	}

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Address:    conf.Server.Address,
		Conf:       conf,
		Logger:     logger,
		Translator: translator,
		ClientSvc:  client.NewService(store, validate),
		TeacherSvc: teacher.NewService(store, validate),
		SubjectSvc: subject.NewService(store, validate),
		ClassSvc:   class.NewService(store, validate),
	})
	app.Start()
}
