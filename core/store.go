package core

import "context"

// HeaderOffset converts a 0-based data position into the 1-based storage row:
// row 1 is the column header, data rows begin at row 2.
const HeaderOffset = 2

// Record is one flat entity row: field name -> stored string value.
// Numbers and dates are carried in their canonical string form
// (DD/MM/YYYY dates, HH:MM times).
type Record map[string]string

// Get returns the value for `field`, or "" when absent.
func (r Record) Get(field string) string {
	return r[field]
}

// Collection is an in-memory snapshot of one named worksheet: its ordered
// column header plus its data records, in storage order. A snapshot is
// treated as immutable for the duration of a single validate-then-write
// sequence; positions within it go stale as soon as a row is deleted or
// inserted, so every operation reloads before addressing the store.
type Collection struct {
	Name    string
	Columns []string
	Records []Record
}

// Row flattens `rec` into the collection's column order.
func (c Collection) Row(rec Record) []string {
	row := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		row[i] = rec[col]
	}
	return row
}

// Values returns the stored values of a single column, in order.
func (c Collection) Values(column string) []string {
	vals := make([]string, len(c.Records))
	for i, rec := range c.Records {
		vals[i] = rec[column]
	}
	return vals
}

// FindByID returns the current 0-based position of the record whose
// `column` value equals `id`. Positions are only valid against this
// snapshot; they are recomputed on every load, never cached.
func (c Collection) FindByID(column, id string) (int, bool) {
	id = CleanString(id)
	for pos, rec := range c.Records {
		if CleanString(rec.Get(column)) == id {
			return pos, true
		}
	}
	return 0, false
}

// Store is the positional, header-relative contract with the backing
// spreadsheet. Positions are 0-based data indexes; implementations own the
// HeaderOffset translation. Every call is synchronous and must complete (or
// fail) before the next one is issued; failures come back wrapped as a
// single *StoreError.
type Store interface {
	// Load returns the full collection snapshot, header included.
	Load(ctx context.Context, name string) (Collection, error)

	// Append adds a new data row (identifier column included) at the end.
	Append(ctx context.Context, name string, row []string) error

	// UpdateRow rewrites the non-identifier columns of the row at `pos`.
	// `row` must not include the identifier column: it is never rewritten.
	UpdateRow(ctx context.Context, name string, pos int, row []string) error

	// DeleteRow removes the row at `pos`, shifting all following rows up by
	// one. Any position cached beyond `pos` is stale afterwards.
	DeleteRow(ctx context.Context, name string, pos int) error

	// EnsureCollection creates the worksheet with its header row when missing.
	EnsureCollection(ctx context.Context, name string, columns []string) error
}
