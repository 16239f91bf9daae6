package class_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/class"
	"github.com/aposenior/gestao/core/subject"
	"github.com/aposenior/gestao/core/teacher"
	testutil "github.com/aposenior/gestao/tests"
)

func setup(t *testing.T) (*class.Service, subject.Subject, teacher.Teacher) {
	t.Helper()

	store := testutil.NewStore(t)
	validate, _ := testutil.NewValidator(t)

	sub := testutil.CreateSubject(t, subject.NewService(store, validate), "Pintura")
	tch := testutil.CreateTeacher(t, teacher.NewService(store, validate), "Ana Martins", "912345678")
	return class.NewService(store, validate), sub, tch
}

func newClass(sub subject.Subject, tch teacher.Teacher) class.NewClass {
	return class.NewClass{
		Name:      "Pintura I",
		SubjectID: sub.ID,
		TeacherID: tch.ID,
		Room:      "Sala 1",
		Day:       "Segunda-feira",
		Start:     "09:00",
		End:       "10:00",
		Capacity:  12,
	}
}

func assertValidationMessages(t *testing.T, err error, wantParts ...string) {
	t.Helper()

	verr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("error type = %T (%v), want *core.ValidationError", err, err)
	}
	for _, part := range wantParts {
		found := false
		for _, msg := range verr.Messages {
			if strings.Contains(msg, part) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("messages %v do not mention %q", verr.Messages, part)
		}
	}
}

func TestService_Create(t *testing.T) {
	svc, sub, tch := setup(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, newClass(sub, tch))
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}
	if c.ID != "T0001" {
		t.Errorf("Create() id = %s, want T0001", c.ID)
	}
	if c.Status != class.StatusActive {
		t.Errorf("Create() status = %s, want %s", c.Status, class.StatusActive)
	}

	t.Run("unknown references rejected", func(t *testing.T) {
		data := newClass(sub, tch)
		data.Name = "Pintura II"
		data.SubjectID = "D0099"
		data.TeacherID = "P0099"
		data.Room = "Sala 2"
		_, err := svc.Create(ctx, data)
		assertValidationMessages(t, err, "subject 'D0099' does not exist", "teacher 'P0099' does not exist")
	})

	t.Run("room conflict rejected", func(t *testing.T) {
		data := newClass(sub, tch)
		data.Name = "Pintura II"
		data.Start, data.End = "09:30", "10:30"
		_, err := svc.Create(ctx, data)
		assertValidationMessages(t, err, "room 'Sala 1' is already occupied")
	})

	t.Run("duplicate name per subject rejected", func(t *testing.T) {
		data := newClass(sub, tch)
		data.Name = "pintura i" // case-insensitive duplicate
		data.Day = "Sexta-feira"
		data.Room = "Sala 2"
		_, err := svc.Create(ctx, data)
		assertValidationMessages(t, err, "already exists for this subject")
	})

	t.Run("back to back accepted", func(t *testing.T) {
		data := newClass(sub, tch)
		data.Name = "Pintura II"
		data.Start, data.End = "10:00", "11:00"
		c, err := svc.Create(ctx, data)
		if err != nil {
			t.Fatalf("Create() failed, %v", err)
		}
		if c.ID != "T0002" {
			t.Errorf("Create() id = %s, want T0002", c.ID)
		}
	})
}

func TestService_Update(t *testing.T) {
	svc, sub, tch := setup(t)
	ctx := context.Background()

	c := testutil.CreateClass(t, svc, newClass(sub, tch))

	// resaving a class unchanged must not conflict with itself
	updated, err := svc.Update(ctx, c.ID, class.UpdateClass(newClass(sub, tch)))
	if err != nil {
		t.Fatalf("Update() failed, %v", err)
	}
	if updated.ID != c.ID {
		t.Errorf("Update() id = %s, want %s (identifiers are immutable)", updated.ID, c.ID)
	}

	if _, err = svc.Update(ctx, "T0099", class.UpdateClass(newClass(sub, tch))); err != class.ErrNotFound {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestService_Timetable(t *testing.T) {
	svc, sub, tch := setup(t)
	ctx := context.Background()

	late := newClass(sub, tch)
	late.Name = "Pintura II"
	late.Start, late.End = "14:00", "15:00"
	testutil.CreateClass(t, svc, late)

	early := newClass(sub, tch)
	testutil.CreateClass(t, svc, early)

	inactive := newClass(sub, tch)
	inactive.Name = "Pintura III"
	inactive.Start, inactive.End = "16:00", "17:00"
	inactive.Status = class.StatusInactive
	testutil.CreateClass(t, svc, inactive)

	week, err := svc.Timetable(ctx)
	if err != nil {
		t.Fatalf("Timetable() failed, %v", err)
	}
	if len(week) != len(class.Weekdays) {
		t.Fatalf("Timetable() has %d days, want %d", len(week), len(class.Weekdays))
	}
	if week[0].Day != "Segunda-feira" {
		t.Fatalf("Timetable() first day = %s, want Segunda-feira", week[0].Day)
	}

	monday := week[0].Classes
	if len(monday) != 2 {
		t.Fatalf("Timetable() monday has %d classes, want 2 (inactive excluded)", len(monday))
	}
	if monday[0].Name != "Pintura I" || monday[1].Name != "Pintura II" {
		t.Errorf("Timetable() monday order = [%s, %s], want chronological", monday[0].Name, monday[1].Name)
	}
}

func TestService_DeleteShiftsPositions(t *testing.T) {
	svc, sub, tch := setup(t)
	ctx := context.Background()

	first := testutil.CreateClass(t, svc, newClass(sub, tch))

	second := newClass(sub, tch)
	second.Name = "Pintura II"
	second.Day = "Terça-feira"
	c2 := testutil.CreateClass(t, svc, second)

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() failed, %v", err)
	}

	// the survivor is still addressable by id after rows shifted up
	got, err := svc.GetByID(ctx, c2.ID)
	if err != nil {
		t.Fatalf("GetByID() failed, %v", err)
	}
	if got.Name != "Pintura II" {
		t.Errorf("GetByID() name = %s, want Pintura II", got.Name)
	}

	// freed sequence numbers are not reused
	third := newClass(sub, tch)
	third.Name = "Pintura III"
	third.Day = "Quarta-feira"
	c3 := testutil.CreateClass(t, svc, third)
	if c3.ID != "T0003" {
		t.Errorf("Create() id = %s, want T0003", c3.ID)
	}
}
