package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/class"
	"github.com/aposenior/gestao/core/client"
	"github.com/aposenior/gestao/core/subject"
	"github.com/aposenior/gestao/core/teacher"
)

type (
	Options struct {
		Address        string
		Conf           *core.Config
		Logger         core.Logger
		Translator     ut.Translator
		DisableReqLogs bool

		ClientSvc  *client.Service
		TeacherSvc *teacher.Service
		SubjectSvc *subject.Service
		ClassSvc   *class.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := s.opts.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || s.opts.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerClientAPI(v1, s.opts.ClientSvc)
	registerTeacherAPI(v1, s.opts.TeacherSvc)
	registerSubjectAPI(v1, s.opts.SubjectSvc)
	registerClassAPI(v1, s.opts.ClassSvc)
	registerOverviewAPI(v1, s.opts)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) signalShutdown() {
	go func() { _ = s.Stop(context.Background()) }()
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Gestao IPSS API!")
}
