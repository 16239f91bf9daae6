package teacher_test

import (
	"context"
	"testing"

	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/teacher"
	testutil "github.com/aposenior/gestao/tests"
)

func setup(t *testing.T) *teacher.Service {
	t.Helper()

	store := testutil.NewStore(t)
	validate, _ := testutil.NewValidator(t)
	return teacher.NewService(store, validate)
}

func TestService_Create(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	tch, err := svc.Create(ctx, teacher.NewTeacher{FullName: "José Martins", Phone: "912345678", HourlyRate: 12.5})
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}
	if tch.ID != "P0001" {
		t.Errorf("Create() id = %s, want P0001", tch.ID)
	}

	t.Run("phone is required", func(t *testing.T) {
		if _, err := svc.Create(ctx, teacher.NewTeacher{FullName: "Ana Costa"}); err == nil {
			t.Error("Create() accepted a teacher without a phone")
		}
	})

	t.Run("full name unique ignoring case and accents", func(t *testing.T) {
		_, err := svc.Create(ctx, teacher.NewTeacher{FullName: "jose martins", Phone: "961234567"})
		verr, ok := err.(*core.ValidationError)
		if !ok {
			t.Fatalf("Create() error type = %T (%v), want *core.ValidationError", err, err)
		}
		want := "value 'jose martins' is already in use for field 'Nome Completo'"
		if len(verr.Messages) != 1 || verr.Messages[0] != want {
			t.Errorf("Create() messages = %v, want [%s]", verr.Messages, want)
		}
	})

	t.Run("hourly rate round-trips", func(t *testing.T) {
		got, err := svc.GetByID(ctx, tch.ID)
		if err != nil {
			t.Fatalf("GetByID() failed, %v", err)
		}
		if got.HourlyRate != 12.5 {
			t.Errorf("GetByID() hourly rate = %v, want 12.5", got.HourlyRate)
		}
	})
}

func TestService_Update(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	tch := testutil.CreateTeacher(t, svc, "José Martins", "912345678")

	// resaving under its own name is not a duplicate
	updated, err := svc.Update(ctx, tch.ID, teacher.UpdateTeacher{FullName: "José Martins", Phone: "961234567"})
	if err != nil {
		t.Fatalf("Update() failed, %v", err)
	}
	if updated.Phone != "961234567" {
		t.Errorf("Update() phone = %s, want 961234567", updated.Phone)
	}

	if _, err = svc.Update(ctx, "P0099", teacher.UpdateTeacher{FullName: "Ana", Phone: "912345678"}); err != teacher.ErrNotFound {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}
