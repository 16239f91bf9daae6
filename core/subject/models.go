package subject

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aposenior/gestao/core"
)

const (
	SheetName = "Disciplinas"
	IDPrefix  = "D"
	IDColumn  = "ID_disciplina"
)

// column headers, in storage order
const (
	colName        = "Nome da Disciplina"
	colStatus      = "Estado"
	colCreatedDate = "Data de Criação"
	colDescription = "Descrição"
)

var Columns = []string{IDColumn, colName, colStatus, colCreatedDate, colDescription}

var (
	StatusActive   = "Ativa"
	StatusInactive = "Inativa"
	Statuses       = []string{StatusActive, StatusInactive}
)

var rules = core.Rules{
	Required: []string{colName},
	Unique:   []string{colName},
	Labels:   map[string]string{colName: "Nome da Disciplina"},
}

type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedDate string `json:"created_date"`
	Description string `json:"description"`
}

func FromRecord(rec core.Record) Subject {
	return Subject{
		ID:          rec.Get(IDColumn),
		Name:        rec.Get(colName),
		Status:      rec.Get(colStatus),
		CreatedDate: rec.Get(colCreatedDate),
		Description: rec.Get(colDescription),
	}
}

func (s Subject) Record() core.Record {
	return core.Record{
		IDColumn:       s.ID,
		colName:        s.Name,
		colStatus:      s.Status,
		colCreatedDate: s.CreatedDate,
		colDescription: s.Description,
	}
}

// NewSubject defines what information may be provided to register a Subject.
type NewSubject struct {
	Name        string `json:"name" validate:"required"`
	Status      string `json:"status" validate:"subject_status"`
	CreatedDate string `json:"created_date" validate:"date_pt"`
	Description string `json:"description"`
}

func (ns *NewSubject) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	if ns.Status == "" {
		ns.Status = StatusActive
	}
	return validate.Struct(ns)
}

func (ns NewSubject) subject() Subject {
	return Subject{
		Name:        ns.Name,
		Status:      ns.Status,
		CreatedDate: ns.CreatedDate,
		Description: ns.Description,
	}
}

// UpdateSubject defines what information may be provided to modify a Subject.
type UpdateSubject NewSubject

func (us *UpdateSubject) Validate(validate *validator.Validate) error {
	return (*NewSubject)(us).Validate(validate)
}

var (
	statusTag  = "subject_status"
	statusText = "status must be Ativa or Inativa"
)

// RegisterValidators registers the subject-specific validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(statusTag, func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "" || core.OneOf(v, Statuses)
	})
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}
