package inmemstore

import (
	"context"
	"testing"

	"github.com/aposenior/gestao/core"
)

var columns = []string{"ID", "Nome"}

func setup(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	if err := store.EnsureCollection(context.Background(), "Utentes", columns); err != nil {
		t.Fatalf("EnsureCollection() failed, %v", err)
	}
	return store
}

func TestStore_roundTrip(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	for _, row := range [][]string{
		{"U0001", "Maria"},
		{"U0002", "João"},
		{"U0003", "Rui"},
	} {
		if err := store.Append(ctx, "Utentes", row); err != nil {
			t.Fatalf("Append() failed, %v", err)
		}
	}

	coll, err := store.Load(ctx, "Utentes")
	if err != nil {
		t.Fatalf("Load() failed, %v", err)
	}
	if len(coll.Records) != 3 {
		t.Fatalf("Load() returned %d records, want 3", len(coll.Records))
	}
	if got := coll.Records[1].Get("Nome"); got != "João" {
		t.Errorf("Records[1].Nome = %s, want João", got)
	}
}

func TestStore_UpdateRow_preservesIdentifier(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	if err := store.Append(ctx, "Utentes", []string{"U0001", "Maria"}); err != nil {
		t.Fatalf("Append() failed, %v", err)
	}
	// the incoming row starts at the second column
	if err := store.UpdateRow(ctx, "Utentes", 0, []string{"Maria Santos"}); err != nil {
		t.Fatalf("UpdateRow() failed, %v", err)
	}

	coll, _ := store.Load(ctx, "Utentes")
	if got := coll.Records[0].Get("ID"); got != "U0001" {
		t.Errorf("identifier = %s, want U0001 (never rewritten)", got)
	}
	if got := coll.Records[0].Get("Nome"); got != "Maria Santos" {
		t.Errorf("Nome = %s, want Maria Santos", got)
	}
}

func TestStore_DeleteRow_shiftsFollowingRows(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	for _, row := range [][]string{{"U0001", "Maria"}, {"U0002", "João"}, {"U0003", "Rui"}} {
		if err := store.Append(ctx, "Utentes", row); err != nil {
			t.Fatalf("Append() failed, %v", err)
		}
	}
	if err := store.DeleteRow(ctx, "Utentes", 0); err != nil {
		t.Fatalf("DeleteRow() failed, %v", err)
	}

	coll, _ := store.Load(ctx, "Utentes")
	if len(coll.Records) != 2 {
		t.Fatalf("Load() returned %d records, want 2", len(coll.Records))
	}
	// U0002 now occupies position 0
	if pos, ok := coll.FindByID("ID", "U0002"); !ok || pos != 0 {
		t.Errorf("FindByID(U0002) = (%d, %v), want (0, true)", pos, ok)
	}

	if err := store.DeleteRow(ctx, "Utentes", 5); !core.IsStoreError(err) {
		t.Errorf("DeleteRow() out of range error = %v, want a store error", err)
	}
}

func TestStore_missingCollection(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Append(ctx, "Utentes", []string{"U0001"}); !core.IsStoreError(err) {
		t.Errorf("Append() error = %v, want a store error", err)
	}

	// loading an unknown collection is empty, not an error
	coll, err := store.Load(ctx, "Utentes")
	if err != nil {
		t.Fatalf("Load() failed, %v", err)
	}
	if len(coll.Columns) != 0 || len(coll.Records) != 0 {
		t.Errorf("Load() = %+v, want an empty collection", coll)
	}
}
