package core

import "testing"

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "João", want: "joao"},
		{in: "JOSÉ  ", want: "jose"},
		{in: "Informática", want: "informatica"},
		{in: "Terça-feira", want: "terca-feira"},
		{in: "plain", want: "plain"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeString(tt.in); got != tt.want {
				t.Errorf("NormalizeString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOk bool
	}{
		{in: "00:00", want: 0, wantOk: true},
		{in: "09:30", want: 570, wantOk: true},
		{in: "23:59", want: 1439, wantOk: true},
		{in: " 10:00 ", want: 600, wantOk: true},
		{in: "24:00", wantOk: false},
		{in: "9h30", wantOk: false},
		{in: "", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("31/12/2025"); !ok {
		t.Error("ParseDate() rejected a valid DD/MM/YYYY date")
	}
	if _, ok := ParseDate("2025-12-31"); ok {
		t.Error("ParseDate() accepted an ISO date")
	}
	if _, ok := ParseDate("31/02/2025"); ok {
		t.Error("ParseDate() accepted an impossible date")
	}
}
