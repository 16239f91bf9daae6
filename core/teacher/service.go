package teacher

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/aposenior/gestao/core"
)

var ErrNotFound = errors.New("teacher not found")

// Service owns all reads and writes of the Professores collection, always
// against a freshly loaded snapshot.
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

func (svc *Service) Create(ctx context.Context, nt NewTeacher) (Teacher, error) {
	if err := nt.Validate(svc.validate); err != nil {
		return Teacher{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Teacher{}, err
	}

	t := nt.teacher()
	if errs := core.ValidateRecord(coll, t.Record(), rules); len(errs) > 0 {
		return Teacher{}, core.NewValidationErrors(errs...)
	}

	t.ID = core.NextID(coll.Values(IDColumn), IDPrefix)
	if err := svc.store.Append(ctx, SheetName, coll.Row(t.Record())); err != nil {
		return Teacher{}, errors.Wrap(err, "appending teacher")
	}
	return t, nil
}

func (svc *Service) Update(ctx context.Context, id string, ut UpdateTeacher) (Teacher, error) {
	if err := ut.Validate(svc.validate); err != nil {
		return Teacher{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Teacher{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Teacher{}, ErrNotFound
	}

	t := NewTeacher(ut).teacher()
	t.ID = id
	if errs := core.ValidateRecord(coll, t.Record(), rules, pos); len(errs) > 0 {
		return Teacher{}, core.NewValidationErrors(errs...)
	}

	if err := svc.store.UpdateRow(ctx, SheetName, pos, coll.Row(t.Record())[1:]); err != nil {
		return Teacher{}, errors.Wrap(err, "updating teacher")
	}
	return t, nil
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

func (svc *Service) GetByID(ctx context.Context, id string) (Teacher, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return Teacher{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Teacher{}, ErrNotFound
	}
	return FromRecord(coll.Records[pos]), nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Teacher, error) {
	return svc.Filter(ctx, "")
}

func (svc *Service) Filter(ctx context.Context, query string) ([]Teacher, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	recs := core.Filter(coll, query)
	teachers := make([]Teacher, 0, len(recs))
	for _, rec := range recs {
		teachers = append(teachers, FromRecord(rec))
	}
	return teachers, nil
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(coll.Records), nil
}
