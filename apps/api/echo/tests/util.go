package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/aposenior/gestao/apps/api/echo"
	"github.com/aposenior/gestao/core"
	"github.com/aposenior/gestao/core/class"
	"github.com/aposenior/gestao/core/client"
	"github.com/aposenior/gestao/core/subject"
	"github.com/aposenior/gestao/core/teacher"
	logsvc "github.com/aposenior/gestao/services/logger"
	testutil "github.com/aposenior/gestao/tests"
)

type services struct {
	client  *client.Service
	teacher *teacher.Service
	subject *subject.Service
	class   *class.Service
}

func setup(t *testing.T) (Server, services) {
	t.Helper()

	store := testutil.NewStore(t)
	validate, translator := testutil.NewValidator(t)

	svcs := services{
		client:  client.NewService(store, validate),
		teacher: teacher.NewService(store, validate),
		subject: subject.NewService(store, validate),
		class:   class.NewService(store, validate),
	}

	conf := &core.Config{Env: "TEST", TestMode: true}
	app := NewServer(&Options{
		Conf:           conf,
		Logger:         logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags)),
		Translator:     translator,
		DisableReqLogs: true,
		ClientSvc:      svcs.client,
		TeacherSvc:     svcs.teacher,
		SubjectSvc:     svcs.subject,
		ClassSvc:       svcs.class,
	})
	return app, svcs
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
