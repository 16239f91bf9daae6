package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type (
	// timetableEntry is one class card in the weekly view.
	timetableEntry struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Start   string `json:"start"`
		End     string `json:"end"`
		Teacher string `json:"teacher"`
		Place   string `json:"place"`
	}

	timetableDay struct {
		Day     string           `json:"day"`
		Classes []timetableEntry `json:"classes"`
	}

	dashboardCounts struct {
		Clients  int `json:"clients"`
		Teachers int `json:"teachers"`
		Subjects int `json:"subjects"`
		Classes  int `json:"classes"`
	}
)

type overviewApi struct {
	opts *Options
}

func registerOverviewAPI(g *echo.Group, opts *Options) {
	api := overviewApi{opts: opts}
	g.GET("/timetable", api.timetable)
	g.GET("/dashboard", api.dashboard)
}

// timetable renders the weekly schedule of active classes: one column per
// weekday in calendar order, classes sorted by start time, teacher ids
// dereferenced to names and "Outro" rooms replaced by their free-text
// location.
func (api *overviewApi) timetable(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	week, err := api.opts.ClassSvc.Timetable(reqCtx)
	if err != nil {
		return err
	}
	teachers, err := api.opts.TeacherSvc.QueryAll(reqCtx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.FullName
	}

	view := make([]timetableDay, 0, len(week))
	for _, day := range week {
		entries := make([]timetableEntry, 0, len(day.Classes))
		for _, c := range day.Classes {
			teacherName := names[c.TeacherID]
			if teacherName == "" {
				teacherName = c.TeacherID
			}
			entries = append(entries, timetableEntry{
				ID:      c.ID,
				Name:    c.Name,
				Start:   c.Start,
				End:     c.End,
				Teacher: teacherName,
				Place:   c.Place(),
			})
		}
		view = append(view, timetableDay{Day: day.Day, Classes: entries})
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *overviewApi) dashboard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var counts dashboardCounts
	var err error

	if counts.Clients, err = api.opts.ClientSvc.Count(reqCtx); err != nil {
		return err
	}
	if counts.Teachers, err = api.opts.TeacherSvc.Count(reqCtx); err != nil {
		return err
	}
	if counts.Subjects, err = api.opts.SubjectSvc.Count(reqCtx); err != nil {
		return err
	}
	if counts.Classes, err = api.opts.ClassSvc.Count(reqCtx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, counts)
}
