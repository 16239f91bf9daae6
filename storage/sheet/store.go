// Package sheetstore implements core.Store on top of a Google Sheets
// spreadsheet: one worksheet per collection, row 1 holding the column
// header, data rows starting at row 2.
package sheetstore

import (
	"context"
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/aposenior/gestao/core"
)

// loadRange is wide enough for every collection's columns.
const loadRange = "A1:ZZ"

type Store struct {
	svc           *sheets.Service
	spreadsheetID string

	// worksheet title -> numeric sheet id, needed for row deletion
	mutex    sync.Mutex
	sheetIDs map[string]int64
}

var _ core.Store = (*Store)(nil)

// NewStore authenticates with the service account key at credentialsFile
// and binds to the spreadsheet document.
func NewStore(ctx context.Context, spreadsheetID, credentialsFile string) (*Store, error) {
	creds, err := ioutil.ReadFile(credentialsFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading credentials file")
	}
	conf, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, errors.Wrap(err, "parsing service account credentials")
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "creating sheets service")
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID, sheetIDs: make(map[string]int64)}, nil
}

func (s *Store) Load(ctx context.Context, name string) (core.Collection, error) {
	coll := core.Collection{Name: name}

	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, rangeRef(name, loadRange)).
		Context(ctx).Do()
	if err != nil {
		return coll, core.NewStoreError(err, "loading collection "+name)
	}
	if len(resp.Values) == 0 {
		return coll, nil
	}

	coll.Columns = toStrings(resp.Values[0])
	coll.Records = make([]core.Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		vals := toStrings(row)
		rec := make(core.Record, len(coll.Columns))
		for i, col := range coll.Columns {
			if i < len(vals) {
				rec[col] = vals[i]
			}
		}
		coll.Records = append(coll.Records, rec)
	}
	return coll, nil
}

func (s *Store) Append(ctx context.Context, name string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toValues(row)}}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rangeRef(name, "A1"), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return core.NewStoreError(err, "appending to collection "+name)
	}
	return nil
}

func (s *Store) UpdateRow(ctx context.Context, name string, pos int, row []string) error {
	// column A holds the identifier and is never rewritten: the update
	// range starts at column B of the storage row
	target := rangeRef(name, fmt.Sprintf("B%d", pos+core.HeaderOffset))
	vr := &sheets.ValueRange{Values: [][]interface{}{toValues(row)}}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, target, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return core.NewStoreError(err, "updating collection "+name)
	}
	return nil
}

func (s *Store) DeleteRow(ctx context.Context, name string, pos int) error {
	sheetID, err := s.sheetID(ctx, name)
	if err != nil {
		return err
	}

	// rows after the deleted one shift up by one; the caller reloads before
	// addressing the store by position again
	storageRow := int64(pos + core.HeaderOffset)
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: storageRow - 1, // 0-based, inclusive
					EndIndex:   storageRow,     // exclusive
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return core.NewStoreError(err, "deleting from collection "+name)
	}
	return nil
}

func (s *Store) EnsureCollection(ctx context.Context, name string, columns []string) error {
	if _, err := s.sheetID(ctx, name); err == nil {
		return nil
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return core.NewStoreError(err, "creating collection "+name)
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{toValues(columns)}}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rangeRef(name, "A1"), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return core.NewStoreError(err, "writing header of collection "+name)
	}
	return nil
}

// sheetID resolves a worksheet title to its numeric id, refreshing the
// cached mapping on a miss (titles never change ids, but sheets may be
// added behind our back).
func (s *Store) sheetID(ctx context.Context, name string) (int64, error) {
	s.mutex.Lock()
	if id, ok := s.sheetIDs[name]; ok {
		s.mutex.Unlock()
		return id, nil
	}
	s.mutex.Unlock()

	doc, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, core.NewStoreError(err, "fetching spreadsheet metadata")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, sh := range doc.Sheets {
		if sh.Properties != nil {
			s.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	if id, ok := s.sheetIDs[name]; ok {
		return id, nil
	}
	return 0, core.NewStoreError(fmt.Errorf("worksheet %q not found", name), "resolving sheet id")
}

func rangeRef(name, cells string) string {
	return fmt.Sprintf("'%s'!%s", name, cells)
}

func toStrings(row []interface{}) []string {
	vals := make([]string, len(row))
	for i, v := range row {
		vals[i] = fmt.Sprintf("%v", v)
	}
	return vals
}

func toValues(row []string) []interface{} {
	vals := make([]interface{}, len(row))
	for i, v := range row {
		vals[i] = v
	}
	return vals
}
