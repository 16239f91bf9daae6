package testutil

import (
	"context"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/class"
	"github.com/aposenior/gestao/core/client"
	"github.com/aposenior/gestao/core/subject"
	"github.com/aposenior/gestao/core/teacher"
	inmemstore "github.com/aposenior/gestao/storage/inmem"
)

// NewStore returns an in-memory store with all the application collections
// created and empty.
func NewStore(t *testing.T) core.Store {
	t.Helper()

	store := inmemstore.NewStore()
	ctx := context.Background()
	for name, columns := range map[string][]string{
		client.SheetName:  client.Columns,
		teacher.SheetName: teacher.Columns,
		subject.SheetName: subject.Columns,
		class.SheetName:   class.Columns,
	} {
		if err := store.EnsureCollection(ctx, name, columns); err != nil {
			t.Fatalf("NewStore() failed: %v", err)
		}
	}
	return store
}

// NewValidator returns a validator with every entity tag registered.
func NewValidator(t *testing.T) (*validator.Validate, ut.Translator) {
	t.Helper()

	validate, translator := core.NewValidator()
	client.RegisterValidators(validate, translator)
	subject.RegisterValidators(validate, translator)
	class.RegisterValidators(validate, translator)
	return validate, translator
}

func CreateTeacher(t *testing.T, svc *teacher.Service, name, phone string) teacher.Teacher {
	t.Helper()

	tch, err := svc.Create(context.Background(), teacher.NewTeacher{FullName: name, Phone: phone})
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return tch
}

func CreateSubject(t *testing.T, svc *subject.Service, name string) subject.Subject {
	t.Helper()

	sub, err := svc.Create(context.Background(), subject.NewSubject{Name: name})
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return sub
}

func CreateClient(t *testing.T, svc *client.Service, name, nif string) client.Client {
	t.Helper()

	cl, err := svc.Create(context.Background(), client.NewClient{Name: name, NIF: nif})
	if err != nil {
		t.Fatalf("CreateClient() failed: %v", err)
	}
	return cl
}

func CreateClass(t *testing.T, svc *class.Service, data class.NewClass) class.Class {
	t.Helper()

	c, err := svc.Create(context.Background(), data)
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return c
}
