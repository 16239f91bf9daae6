package client

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/aposenior/gestao/core"
)

var ErrNotFound = errors.New("client not found")

// Service owns all reads and writes of the Utentes collection. Every
// operation loads a fresh snapshot first: positions are never carried over
// from a previous call (any delete would have invalidated them).
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

func (svc *Service) Create(ctx context.Context, nc NewClient) (Client, error) {
	if err := nc.Validate(svc.validate); err != nil {
		return Client{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Client{}, err
	}

	cl := nc.client()
	if errs := core.ValidateRecord(coll, cl.Record(), rules); len(errs) > 0 {
		return Client{}, core.NewValidationErrors(errs...)
	}

	cl.ID = core.NextID(coll.Values(IDColumn), IDPrefix)
	if err := svc.store.Append(ctx, SheetName, coll.Row(cl.Record())); err != nil {
		return Client{}, errors.Wrap(err, "appending client")
	}
	return cl, nil
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateClient) (Client, error) {
	if err := uc.Validate(svc.validate); err != nil {
		return Client{}, err
	}
	coll, err := svc.load(ctx)
	if err != nil {
		return Client{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Client{}, ErrNotFound
	}

	cl := NewClient(uc).client()
	cl.ID = id
	if errs := core.ValidateRecord(coll, cl.Record(), rules, pos); len(errs) > 0 {
		return Client{}, core.NewValidationErrors(errs...)
	}

	// identifier column stays untouched; the row starts at the second column
	if err := svc.store.UpdateRow(ctx, SheetName, pos, coll.Row(cl.Record())[1:]); err != nil {
		return Client{}, errors.Wrap(err, "updating client")
	}
	return cl, nil
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

func (svc *Service) GetByID(ctx context.Context, id string) (Client, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return Client{}, err
	}
	pos, ok := coll.FindByID(IDColumn, id)
	if !ok {
		return Client{}, ErrNotFound
	}
	return FromRecord(coll.Records[pos]), nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Client, error) {
	return svc.Filter(ctx, "")
}

// Filter does a case- and diacritic-insensitive substring search across all
// client fields; an empty query returns everything in storage order.
func (svc *Service) Filter(ctx context.Context, query string) ([]Client, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	recs := core.Filter(coll, query)
	clients := make([]Client, 0, len(recs))
	for _, rec := range recs {
		clients = append(clients, FromRecord(rec))
	}
	return clients, nil
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	coll, err := svc.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(coll.Records), nil
}
