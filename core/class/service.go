package class

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/subject"
	"github.com/aposenior/gestao/core/teacher"
)

var ErrNotFound = errors.New("class not found")

// Service owns all reads and writes of the Turmas collection. On top of the
// shared record rules it runs the schedule conflict detector and checks that
// the referenced subject and teacher exist. Every check runs against a fresh
// snapshot and all failures come back together in one ValidationError.
type Service struct {
	store    core.Store
	validate *validator.Validate
}

func NewService(store core.Store, validate *validator.Validate) *Service {
	return &Service{store: store, validate: validate}
}

func (svc *Service) load(ctx context.Context) (core.Collection, error) {
	coll, err := svc.store.Load(ctx, SheetName)
	if err != nil {
		return coll, err
	}
	if len(coll.Columns) == 0 {
		coll.Columns = Columns
	}
	return coll, nil
}

// checkRefs verifies that the candidate's subject and teacher identifiers
// exist in their collections. Failures are validation messages, not errors:
// they belong in the same list as every other reason.
func (svc *Service) checkRefs(ctx context.Context, c Class) ([]string, error) {
	var msgs []string

	subjects, err := svc.store.Load(ctx, subject.SheetName)
	if err != nil {
		return nil, err
	}
	if _, ok := subjects.FindByID(subject.IDColumn, c.SubjectID); !ok {
		msgs = append(msgs, "subject '"+c.SubjectID+"' does not exist")
	}

	teachers, err := svc.store.Load(ctx, teacher.SheetName)
	if err != nil {
		return nil, err
	}
	if _, ok := teachers.FindByID(teacher.IDColumn, c.TeacherID); !ok {
		msgs = append(msgs, "teacher '"+c.TeacherID+"' does not exist")
	}
	return msgs, nil
}

func classes(coll core.Collection) []Class {
	cls := make([]Class, 0, len(coll.Records))
	for _, rec := range coll.Records {
		cls = append(cls, FromRecord(rec))
	}
	return cls
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	if err := nc.Validate(svc.validate); err != nil {
		return Class{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Class{}, err
	}

	c := nc.class()
	errs := core.ValidateRecord(coll, c.Record(), rules)
	refErrs, err := svc.checkRefs(ctx, c)
	if err != nil {
		return Class{}, err
	}
	errs = append(errs, refErrs...)
	errs = append(errs, FindConflicts(c, classes(coll))...)
	if len(errs) > 0 {
		return Class{}, core.NewValidationErrors(errs...)
	}

	c.ID = core.NextID(coll.Values(IDColumn), IDPrefix)
	if err := svc.store.Append(ctx, SheetName, coll.Row(c.Record())); err != nil {
		return Class{}, errors.Wrap(err, "appending class")
	}
	return c, nil
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateClass) (Class, error) {
	if err := uc.Validate(svc.validate); err != nil {
		return Class{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Class{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Class{}, ErrNotFound
	}

	c := NewClass(uc).class()
	c.ID = id
	errs := core.ValidateRecord(coll, c.Record(), rules, pos)
	refErrs, err := svc.checkRefs(ctx, c)
	if err != nil {
		return Class{}, err
	}
	errs = append(errs, refErrs...)
	// the class's own position is excluded or it would conflict with itself
	errs = append(errs, FindConflicts(c, classes(coll), pos)...)
	if len(errs) > 0 {
		return Class{}, core.NewValidationErrors(errs...)
	}

	if err := svc.store.UpdateRow(ctx, SheetName, pos, coll.Row(c.Record())[1:]); err != nil {
		return Class{}, errors.Wrap(err, "updating class")
	}
	return c, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	coll, err := svc.load(ctx)
	if err != nil {
		return err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return ErrNotFound
	}
	return svc.store.DeleteRow(ctx, SheetName, pos)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Class, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return Class{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Class{}, ErrNotFound
	}
	return FromRecord(coll.Records[pos]), nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Class, error) {
	return svc.Filter(ctx, "")
}

func (svc *Service) Filter(ctx context.Context, query string) ([]Class, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	recs := core.Filter(coll, query)
	cls := make([]Class, 0, len(recs))
	for _, rec := range recs {
		cls = append(cls, FromRecord(rec))
	}
	return cls, nil
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(coll.Records), nil
}

// DaySchedule is one weekday's slice of the weekly timetable.
type DaySchedule struct {
	Day     string  `json:"day"`
	Classes []Class `json:"classes"`
}

// Timetable returns the active classes grouped by weekday in calendar
// order, each day sorted chronologically by start time. Classes whose start
// time does not parse sort last.
func (svc *Service) Timetable(ctx context.Context) ([]DaySchedule, error) {
	all, err := svc.QueryAll(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]Class, len(Weekdays))
	for _, c := range all {
		if c.Status != StatusActive {
			continue
		}
		byDay[c.Day] = append(byDay[c.Day], c)
	}

	week := make([]DaySchedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		cls := byDay[day]
		sort.SliceStable(cls, func(i, j int) bool {
			si, oki := core.ParseClock(cls[i].Start)
			sj, okj := core.ParseClock(cls[j].Start)
			if !oki || !okj {
				return oki && !okj
			}
			return si < sj
		})
		week = append(week, DaySchedule{Day: day, Classes: cls})
	}
	return week, nil
}
