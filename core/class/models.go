package class

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/aposenior/gestao/core"
)

const (
	SheetName = "Turmas"
	IDPrefix  = "T"
	IDColumn  = "ID_turma"
)

// column headers, in storage order
const (
	colName      = "Nome da Turma"
	colSubjectID = "ID_disciplina"
	colTeacherID = "ID_professor"
	colRoom      = "Sala"
	colLocation  = "Outro_Local"
	colDay       = "Dia da Semana"
	colStart     = "Hora de Inicio"
	colEnd       = "Hora de Fim"
	colCapacity  = "Capacidade"
	colLevel     = "Nível"
	colStatus    = "Estado"
	colNotes     = "Observacoes"
)

var Columns = []string{
	IDColumn, colName, colSubjectID, colTeacherID, colRoom, colLocation,
	colDay, colStart, colEnd, colCapacity, colLevel, colStatus, colNotes,
}

var (
	// RoomOther is the catch-all placeholder: a class held at a free-text
	// location. Two "Outro" classes never conflict on room grounds, even at
	// an identical location (free-text locations are not comparable).
	RoomOther = "Outro"
	Rooms     = []string{"Sala 1", "Sala 2", "Sala 3", "Sala de Artes", "Sala Exterior", RoomOther}

	Weekdays = []string{
		"Segunda-feira",
		"Terça-feira",
		"Quarta-feira",
		"Quinta-feira",
		"Sexta-feira",
		"Sábado",
		"Domingo",
	}

	Levels = []string{
		"Inicial",
		"Intermédio-Inicial",
		"Intermédio",
		"Intermédio-Avançado",
		"Avançado",
		"Outro",
	}

	StatusActive   = "Ativa"
	StatusInactive = "Inativa"
	Statuses       = []string{StatusActive, StatusInactive}
)

// Name uniqueness is per subject, not collection-wide, so it lives in the
// conflict detector rather than in rules.
var rules = core.Rules{
	Required: []string{colName, colSubjectID, colTeacherID, colDay, colStart, colEnd},
	Labels: map[string]string{
		colName:      "Nome da Turma",
		colSubjectID: "Disciplina",
		colTeacherID: "Professor",
		colDay:       "Dia da Semana",
		colStart:     "Hora de Inicio",
		colEnd:       "Hora de Fim",
	},
}

type Class struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SubjectID string `json:"subject_id"`
	TeacherID string `json:"teacher_id"`
	Room      string `json:"room"`
	Location  string `json:"location"` // free text, only meaningful when Room == RoomOther
	Day       string `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Capacity  int    `json:"capacity"`
	Level     string `json:"level"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// Place is the displayable location: the room, or the free-text location
// when the room is the "Outro" placeholder.
func (c Class) Place() string {
	if c.Room == RoomOther && core.CleanString(c.Location) != "" {
		return c.Location
	}
	return c.Room
}

func FromRecord(rec core.Record) Class {
	// a malformed stored capacity reads as 0, never as a failure
	capacity, _ := strconv.Atoi(core.CleanString(rec.Get(colCapacity)))
	return Class{
		ID:        rec.Get(IDColumn),
		Name:      rec.Get(colName),
		SubjectID: rec.Get(colSubjectID),
		TeacherID: rec.Get(colTeacherID),
		Room:      rec.Get(colRoom),
		Location:  rec.Get(colLocation),
		Day:       rec.Get(colDay),
		Start:     rec.Get(colStart),
		End:       rec.Get(colEnd),
		Capacity:  capacity,
		Level:     rec.Get(colLevel),
		Status:    rec.Get(colStatus),
		Notes:     rec.Get(colNotes),
	}
}

func (c Class) Record() core.Record {
	return core.Record{
		IDColumn:     c.ID,
		colName:      c.Name,
		colSubjectID: c.SubjectID,
		colTeacherID: c.TeacherID,
		colRoom:      c.Room,
		colLocation:  c.Location,
		colDay:       c.Day,
		colStart:     c.Start,
		colEnd:       c.End,
		colCapacity:  strconv.Itoa(c.Capacity),
		colLevel:     c.Level,
		colStatus:    c.Status,
		colNotes:     c.Notes,
	}
}

// NewClass defines what information may be provided to schedule a Class.
type NewClass struct {
	Name      string `json:"name" validate:"required"`
	SubjectID string `json:"subject_id" validate:"required"`
	TeacherID string `json:"teacher_id" validate:"required"`
	Room      string `json:"room" validate:"required,room"`
	Location  string `json:"location"`
	Day       string `json:"day" validate:"required,weekday_pt"`
	Start     string `json:"start" validate:"required,clock"`
	End       string `json:"end" validate:"required,clock"`
	Capacity  int    `json:"capacity" validate:"gt=0"`
	Level     string `json:"level" validate:"class_level"`
	Status    string `json:"status" validate:"class_status"`
	Notes     string `json:"notes"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.SubjectID = core.CleanString(nc.SubjectID)
	nc.TeacherID = core.CleanString(nc.TeacherID)
	if nc.Status == "" {
		nc.Status = StatusActive
	}
	return validate.Struct(nc)
}

func (nc NewClass) class() Class {
	return Class{
		Name:      nc.Name,
		SubjectID: nc.SubjectID,
		TeacherID: nc.TeacherID,
		Room:      nc.Room,
		Location:  nc.Location,
		Day:       nc.Day,
		Start:     nc.Start,
		End:       nc.End,
		Capacity:  nc.Capacity,
		Level:     nc.Level,
		Status:    nc.Status,
		Notes:     nc.Notes,
	}
}

// UpdateClass defines what information may be provided to modify a Class.
type UpdateClass NewClass

func (uc *UpdateClass) Validate(validate *validator.Validate) error {
	return (*NewClass)(uc).Validate(validate)
}
