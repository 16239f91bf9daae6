package core

import "testing"

func TestFilter(t *testing.T) {
	coll := Collection{
		Name:    "Utentes",
		Columns: []string{"ID_utente", "Nome", "Localidade"},
		Records: []Record{
			{"ID_utente": "U0001", "Nome": "João Pereira", "Localidade": "Lisboa"},
			{"ID_utente": "U0002", "Nome": "Maria Silva", "Localidade": "Porto"},
			{"ID_utente": "U0003", "Nome": "joao costa", "Localidade": "Braga"},
		},
	}

	tests := []struct {
		name    string
		query   string
		fields  []string
		wantIDs []string
	}{
		{name: "empty query returns everything in order", query: "", wantIDs: []string{"U0001", "U0002", "U0003"}},
		{name: "blank query returns everything", query: "   ", wantIDs: []string{"U0001", "U0002", "U0003"}},
		{name: "accented query matches plain value", query: "JOÃO", wantIDs: []string{"U0001", "U0003"}},
		{name: "plain query matches accented value", query: "joao", wantIDs: []string{"U0001", "U0003"}},
		{name: "substring match", query: "ilv", wantIDs: []string{"U0002"}},
		{name: "searches every column by default", query: "porto", wantIDs: []string{"U0002"}},
		{name: "restricted to given fields", query: "porto", fields: []string{"Nome"}, wantIDs: nil},
		{name: "no match", query: "coimbra", wantIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(coll, tt.query, tt.fields...)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter() returned %d records, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].Get("ID_utente") != id {
					t.Errorf("Filter()[%d] = %s, want %s", i, got[i].Get("ID_utente"), id)
				}
			}
		})
	}
}
