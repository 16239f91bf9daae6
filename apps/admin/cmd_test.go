package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aposenior/gestao/core/client"
	inmemstore "github.com/aposenior/gestao/storage/inmem"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	return &commandLine{
		store: inmemstore.NewStore(),
		out:   &out,
	}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_run(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "initsheets", args: []string{"initsheets"}},
		{name: "export: no collection", args: []string{"export"}, wantErr: errHelp},
		{name: "export: unknown collection", args: []string{"export", "-collection", "lol"}, wantErrStr: `"lol": no such collection`},
		{name: "export", args: []string{"export", "-collection", client.SheetName}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			}
		})
	}
}

func Test_commandLine_export(t *testing.T) {
	cli, out := setup(t)

	ctx := context.Background()
	if err := cli.initSheets(); err != nil {
		t.Fatalf("initSheets() failed, %v", err)
	}
	row := make([]string, len(client.Columns))
	row[0] = "U0001"
	row[1] = "Maria Silva"
	if err := cli.store.Append(ctx, client.SheetName, row); err != nil {
		t.Fatalf("Append() failed, %v", err)
	}

	if err := cli.run([]string{"admin", "export", "-collection", client.SheetName}); err != nil {
		t.Fatalf("cli.run() failed, %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("export wrote %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], client.IDColumn) {
		t.Errorf("header = %s, want it to start with %s", lines[0], client.IDColumn)
	}
	if !strings.HasPrefix(lines[1], "U0001,Maria Silva") {
		t.Errorf("row = %s, want it to start with the appended record", lines[1])
	}
}
