package teacher

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/aposenior/gestao/core"
)

const (
	SheetName = "Professores"
	IDPrefix  = "P"
	IDColumn  = "ID_professor"
)

// column headers, in storage order
const (
	colFullName   = "Nome Completo"
	colPhone      = "Telefone"
	colEmail      = "Email"
	colNIB        = "NIB"
	colHourlyRate = "Valor Hora"
	colNotes      = "Observacoes"
)

var Columns = []string{IDColumn, colFullName, colPhone, colEmail, colNIB, colHourlyRate, colNotes}

// Full name uniqueness is case- and diacritic-insensitive: "José" and
// "jose" are the same teacher.
var rules = core.Rules{
	Required: []string{colFullName, colPhone},
	Unique:   []string{colFullName},
	Labels:   map[string]string{colFullName: "Nome Completo", colPhone: "Telefone"},
}

type Teacher struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	NIB        string  `json:"nib"`
	HourlyRate float64 `json:"hourly_rate"`
	Notes      string  `json:"notes"`
}

func FromRecord(rec core.Record) Teacher {
	// a malformed stored rate reads as 0, never as a failure
	rate, _ := strconv.ParseFloat(core.CleanString(rec.Get(colHourlyRate)), 64)
	return Teacher{
		ID:         rec.Get(IDColumn),
		FullName:   rec.Get(colFullName),
		Phone:      rec.Get(colPhone),
		Email:      rec.Get(colEmail),
		NIB:        rec.Get(colNIB),
		HourlyRate: rate,
		Notes:      rec.Get(colNotes),
	}
}

func (t Teacher) Record() core.Record {
	return core.Record{
		IDColumn:      t.ID,
		colFullName:   t.FullName,
		colPhone:      t.Phone,
		colEmail:      t.Email,
		colNIB:        t.NIB,
		colHourlyRate: strconv.FormatFloat(t.HourlyRate, 'f', 2, 64),
		colNotes:      t.Notes,
	}
}

// NewTeacher defines what information may be provided to register a Teacher.
type NewTeacher struct {
	FullName   string  `json:"full_name" validate:"required"`
	Phone      string  `json:"phone" validate:"required,phone_pt"`
	Email      string  `json:"email" validate:"email_"`
	NIB        string  `json:"nib"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	Notes      string  `json:"notes"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.FullName = core.CleanString(nt.FullName)
	nt.Email = core.CleanString(nt.Email, true)
	return validate.Struct(nt)
}

func (nt NewTeacher) teacher() Teacher {
	return Teacher{
		FullName:   nt.FullName,
		Phone:      nt.Phone,
		Email:      nt.Email,
		NIB:        nt.NIB,
		HourlyRate: nt.HourlyRate,
		Notes:      nt.Notes,
	}
}

// UpdateTeacher defines what information may be provided to modify a Teacher.
type UpdateTeacher NewTeacher

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	return (*NewTeacher)(ut).Validate(validate)
}
