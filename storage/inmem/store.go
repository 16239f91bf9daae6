// Package inmemstore provides an in-memory core.Store used by tests and
// local development. It reproduces the backing spreadsheet's positional
// behavior, including the position shift on delete.
package inmemstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/aposenior/gestao/core"
)

type table struct {
	columns []string
	rows    [][]string
}

type Store struct {
	mutex  sync.RWMutex
	tables map[string]*table
}

var _ core.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{tables: make(map[string]*table)}
}

func (s *Store) Load(_ context.Context, name string) (core.Collection, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tbl, ok := s.tables[name]
	if !ok {
		return core.Collection{Name: name}, nil
	}

	coll := core.Collection{
		Name:    name,
		Columns: append([]string(nil), tbl.columns...),
		Records: make([]core.Record, 0, len(tbl.rows)),
	}
	for _, row := range tbl.rows {
		rec := make(core.Record, len(tbl.columns))
		for i, col := range tbl.columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		coll.Records = append(coll.Records, rec)
	}
	return coll, nil
}

func (s *Store) Append(_ context.Context, name string, row []string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tbl, ok := s.tables[name]
	if !ok {
		return core.NewStoreError(fmt.Errorf("collection %q not found", name), "inmem.Append")
	}
	tbl.rows = append(tbl.rows, append([]string(nil), row...))
	return nil
}

func (s *Store) UpdateRow(_ context.Context, name string, pos int, row []string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tbl, err := s.table(name, pos)
	if err != nil {
		return err
	}
	// the identifier column is never rewritten: `row` starts at column 2
	updated := append([]string{tbl.rows[pos][0]}, row...)
	tbl.rows[pos] = updated
	return nil
}

func (s *Store) DeleteRow(_ context.Context, name string, pos int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tbl, err := s.table(name, pos)
	if err != nil {
		return err
	}
	// every following row shifts up by one, exactly like the spreadsheet
	tbl.rows = append(tbl.rows[:pos], tbl.rows[pos+1:]...)
	return nil
}

func (s *Store) EnsureCollection(_ context.Context, name string, columns []string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.tables[name]; !ok {
		s.tables[name] = &table{columns: append([]string(nil), columns...)}
	}
	return nil
}

func (s *Store) table(name string, pos int) (*table, error) {
	tbl, ok := s.tables[name]
	if !ok {
		return nil, core.NewStoreError(fmt.Errorf("collection %q not found", name), "inmem")
	}
	if pos < 0 || pos >= len(tbl.rows) {
		return nil, core.NewStoreError(fmt.Errorf("row %d out of range in %q", pos, name), "inmem")
	}
	return tbl, nil
}
