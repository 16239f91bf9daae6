package client

import (
	"github.com/go-playground/validator/v10"

	"github.com/aposenior/gestao/core"
)

const (
	SheetName = "Utentes"
	IDPrefix  = "U"
	IDColumn  = "ID_utente"
)

// column headers, in storage order
const (
	colName             = "Nome"
	colPhone            = "Telefone"
	colAltPhone         = "Telefone Alternativo"
	colEmail            = "Email"
	colAddress          = "Morada"
	colPostalCode       = "Código Postal"
	colLocality         = "Localidade"
	colIDDocument       = "Documento de Identificação"
	colIDDocumentExpiry = "Validade do Documento"
	colNIF              = "NIF"
	colFamilyContact    = "Contacto Familiar"
	colEducation        = "Grau de Escolaridade"
	colOccupation       = "Profissão"
	colEmployment       = "Situação Profissional"
	colRegistrationDate = "Data de Inscrição"
	colNotes            = "Observacoes"
	colStatus           = "Estado"
)

var Columns = []string{
	IDColumn, colName, colPhone, colAltPhone, colEmail, colAddress,
	colPostalCode, colLocality, colIDDocument, colIDDocumentExpiry, colNIF,
	colFamilyContact, colEducation, colOccupation, colEmployment,
	colRegistrationDate, colNotes, colStatus,
}

var (
	StatusActive   = "Ativo"
	StatusInactive = "Inativo"
	Statuses       = []string{StatusActive, StatusInactive}

	EducationLevels = []string{
		"Sem Escolaridade",
		"1º Ciclo (4ª classe)",
		"2º Ciclo (6º ano)",
		"3º Ciclo (9º ano)",
		"Ensino Secundário (12º ano)",
		"Licenciatura",
		"Mestrado",
		"Doutoramento",
		"Outro",
	}

	EmploymentStatuses = []string{
		"Ativo",
		"Desempregado",
		"Estudante",
		"Reformado",
		"Doméstico/a",
		"Outra",
	}
)

// rules are the collection-level constraints checked against a fresh
// snapshot on every create/update. NIF uniqueness is the Client invariant:
// when present, no two clients may share it.
var rules = core.Rules{
	Required: []string{colName},
	Unique:   []string{colNIF},
	Labels:   map[string]string{colNIF: "NIF", colName: "Nome"},
}

type Client struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	AltPhone         string `json:"alt_phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	PostalCode       string `json:"postal_code"`
	Locality         string `json:"locality"`
	IDDocument       string `json:"id_document"`
	IDDocumentExpiry string `json:"id_document_expiry"`
	NIF              string `json:"nif"`
	FamilyContact    string `json:"family_contact"`
	EducationLevel   string `json:"education_level"`
	Occupation       string `json:"occupation"`
	EmploymentStatus string `json:"employment_status"`
	RegistrationDate string `json:"registration_date"`
	Notes            string `json:"notes"`
	Status           string `json:"status"`
}

// FromRecord maps a stored row back to a Client. Unknown or missing columns
// come back as empty strings; a malformed row never fails a read.
func FromRecord(rec core.Record) Client {
	return Client{
		ID:               rec.Get(IDColumn),
		Name:             rec.Get(colName),
		Phone:            rec.Get(colPhone),
		AltPhone:         rec.Get(colAltPhone),
		Email:            rec.Get(colEmail),
		Address:          rec.Get(colAddress),
		PostalCode:       rec.Get(colPostalCode),
		Locality:         rec.Get(colLocality),
		IDDocument:       rec.Get(colIDDocument),
		IDDocumentExpiry: rec.Get(colIDDocumentExpiry),
		NIF:              rec.Get(colNIF),
		FamilyContact:    rec.Get(colFamilyContact),
		EducationLevel:   rec.Get(colEducation),
		Occupation:       rec.Get(colOccupation),
		EmploymentStatus: rec.Get(colEmployment),
		RegistrationDate: rec.Get(colRegistrationDate),
		Notes:            rec.Get(colNotes),
		Status:           rec.Get(colStatus),
	}
}

func (c Client) Record() core.Record {
	return core.Record{
		IDColumn:            c.ID,
		colName:             c.Name,
		colPhone:            c.Phone,
		colAltPhone:         c.AltPhone,
		colEmail:            c.Email,
		colAddress:          c.Address,
		colPostalCode:       c.PostalCode,
		colLocality:         c.Locality,
		colIDDocument:       c.IDDocument,
		colIDDocumentExpiry: c.IDDocumentExpiry,
		colNIF:              c.NIF,
		colFamilyContact:    c.FamilyContact,
		colEducation:        c.EducationLevel,
		colOccupation:       c.Occupation,
		colEmployment:       c.EmploymentStatus,
		colRegistrationDate: c.RegistrationDate,
		colNotes:            c.Notes,
		colStatus:           c.Status,
	}
}

// NewClient defines what information may be provided to register a Client.
type NewClient struct {
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone" validate:"phone_pt"`
	AltPhone         string `json:"alt_phone" validate:"phone_pt"`
	Email            string `json:"email" validate:"email_"`
	Address          string `json:"address"`
	PostalCode       string `json:"postal_code" validate:"postal_pt"`
	Locality         string `json:"locality"`
	IDDocument       string `json:"id_document"`
	IDDocumentExpiry string `json:"id_document_expiry" validate:"date_pt"`
	NIF              string `json:"nif" validate:"nif"`
	FamilyContact    string `json:"family_contact" validate:"phone_pt"`
	EducationLevel   string `json:"education_level" validate:"education_level"`
	Occupation       string `json:"occupation"`
	EmploymentStatus string `json:"employment_status" validate:"employment_status"`
	RegistrationDate string `json:"registration_date" validate:"date_pt"`
	Notes            string `json:"notes"`
	Status           string `json:"status" validate:"client_status"`
}

func (nc *NewClient) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Email = core.CleanString(nc.Email, true)
	nc.NIF = core.CleanString(nc.NIF)
	if nc.Status == "" {
		nc.Status = StatusActive
	}
	return validate.Struct(nc)
}

func (nc NewClient) client() Client {
	return Client{
		Name:             nc.Name,
		Phone:            nc.Phone,
		AltPhone:         nc.AltPhone,
		Email:            nc.Email,
		Address:          nc.Address,
		PostalCode:       nc.PostalCode,
		Locality:         nc.Locality,
		IDDocument:       nc.IDDocument,
		IDDocumentExpiry: nc.IDDocumentExpiry,
		NIF:              nc.NIF,
		FamilyContact:    nc.FamilyContact,
		EducationLevel:   nc.EducationLevel,
		Occupation:       nc.Occupation,
		EmploymentStatus: nc.EmploymentStatus,
		RegistrationDate: nc.RegistrationDate,
		Notes:            nc.Notes,
		Status:           nc.Status,
	}
}

// UpdateClient defines what information may be provided to modify a Client.
// The identifier itself is never rewritten.
type UpdateClient NewClient

func (uc *UpdateClient) Validate(validate *validator.Validate) error {
	return (*NewClient)(uc).Validate(validate)
}
