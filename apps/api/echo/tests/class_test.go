package tests

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aposenior/gestao/core/class"
	testutil "github.com/aposenior/gestao/tests"
)

func Test_classApi_conflicts(t *testing.T) {
	app, svcs := setup(t)

	sub := testutil.CreateSubject(t, svcs.subject, "Pintura")
	tch := testutil.CreateTeacher(t, svcs.teacher, "Ana Martins", "912345678")

	base := class.NewClass{
		Name:      "Pintura I",
		SubjectID: sub.ID,
		TeacherID: tch.ID,
		Room:      "Sala 1",
		Day:       "Segunda-feira",
		Start:     "09:00",
		End:       "10:00",
		Capacity:  12,
	}
	testutil.CreateClass(t, svcs.class, base)

	conflicting := base
	conflicting.Name = "Desenho"
	conflicting.Start, conflicting.End = "09:30", "10:30"

	badRefs := base
	badRefs.Name = "Desenho"
	badRefs.Day = "Sexta-feira"
	badRefs.SubjectID, badRefs.TeacherID = "D0099", "P0099"

	free := base
	free.Name = "Pintura II"
	free.Start, free.End = "10:00", "11:00"

	tests := []httpTest{
		{
			name:     "room and teacher conflicts reported together",
			method:   http.MethodPost,
			path:     "/v1/classes",
			body:     marchallObj(t, conflicting),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"errors": []string{
				"schedule conflict: room 'Sala 1' is already occupied on Segunda-feira between 09:00 and 10:00",
				"schedule conflict: teacher '" + tch.ID + "' already has a class on Segunda-feira between 09:00 and 10:00",
			}}),
		},
		{
			name:     "unknown references reported together",
			method:   http.MethodPost,
			path:     "/v1/classes",
			body:     marchallObj(t, badRefs),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, echo.Map{"errors": []string{
				"subject 'D0099' does not exist",
				"teacher 'P0099' does not exist",
			}}),
		},
		{
			name:     "back to back accepted",
			method:   http.MethodPost,
			path:     "/v1/classes",
			body:     marchallObj(t, free),
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_overviewApi(t *testing.T) {
	app, svcs := setup(t)

	sub := testutil.CreateSubject(t, svcs.subject, "Pintura")
	tch := testutil.CreateTeacher(t, svcs.teacher, "Ana Martins", "912345678")
	testutil.CreateClient(t, svcs.client, "Maria Silva", "")

	testutil.CreateClass(t, svcs.class, class.NewClass{
		Name:      "Pintura I",
		SubjectID: sub.ID,
		TeacherID: tch.ID,
		Room:      class.RoomOther,
		Location:  "Auditório Municipal",
		Day:       "Segunda-feira",
		Start:     "09:00",
		End:       "10:00",
		Capacity:  12,
	})

	t.Run("timetable", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/timetable")
		app.ServeHTTP(rec, req)

		want := make([]echo.Map, 0, len(class.Weekdays))
		for _, day := range class.Weekdays {
			entries := []echo.Map{}
			if day == "Segunda-feira" {
				entries = append(entries, echo.Map{
					"id":      "T0001",
					"name":    "Pintura I",
					"start":   "09:00",
					"end":     "10:00",
					"teacher": "Ana Martins",
					"place":   "Auditório Municipal",
				})
			}
			want = append(want, echo.Map{"day": day, "classes": entries})
		}
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, want)}, rec)
	})

	t.Run("dashboard", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/dashboard")
		app.ServeHTTP(rec, req)
		want := echo.Map{"clients": 1, "teachers": 1, "subjects": 1, "classes": 1}
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, want)}, rec)
	})
}
