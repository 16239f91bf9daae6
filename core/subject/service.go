package subject

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/aposenior/gestao/core"
)

var ErrNotFound = errors.New("subject not found")

// Service owns all reads and writes of the Disciplinas collection, always
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

func (svc *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	if err := ns.Validate(svc.validate); err != nil {
		return Subject{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Subject{}, err
	}

	s := ns.subject()
	if errs := core.ValidateRecord(coll, s.Record(), rules); len(errs) > 0 {
		return Subject{}, core.NewValidationErrors(errs...)
	}

	s.ID = core.NextID(coll.Values(IDColumn), IDPrefix)
	if err := svc.store.Append(ctx, SheetName, coll.Row(s.Record())); err != nil {
		return Subject{}, errors.Wrap(err, "appending subject")
	}
	return s, nil
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateSubject) (Subject, error) {
	if err := us.Validate(svc.validate); err != nil {
		return Subject{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Subject{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Subject{}, ErrNotFound
	}

	s := NewSubject(us).subject()
	s.ID = id
	if errs := core.ValidateRecord(coll, s.Record(), rules, pos); len(errs) > 0 {
		return Subject{}, core.NewValidationErrors(errs...)
	}

	if err := svc.store.UpdateRow(ctx, SheetName, pos, coll.Row(s.Record())[1:]); err != nil {
		return Subject{}, errors.Wrap(err, "updating subject")
	}
	return s, nil
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

func (svc *Service) GetByID(ctx context.Context, id string) (Subject, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return Subject{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Subject{}, ErrNotFound
	}
	return FromRecord(coll.Records[pos]), nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Subject, error) {
	return svc.Filter(ctx, "")
}

func (svc *Service) Filter(ctx context.Context, query string) ([]Subject, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	recs := core.Filter(coll, query)
	subjects := make([]Subject, 0, len(recs))
	for _, rec := range recs {
		subjects = append(subjects, FromRecord(rec))
	}
	return subjects, nil
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(coll.Records), nil
}
