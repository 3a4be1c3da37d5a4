package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/analytics"
	"github.com/trezcool/tathmini/core/feedback"
	"github.com/trezcool/tathmini/core/moderation"
	"github.com/trezcool/tathmini/core/sentiment"
	"github.com/trezcool/tathmini/core/submission"
	emailsvc "github.com/trezcool/tathmini/services/email"
	inmemdb "github.com/trezcool/tathmini/storage/database/inmem"
)

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
	extra    interface{}
}

type testEnv struct {
	server    Server
	fbSvc     *feedback.Service
	factsRepo interface {
		SetStudent(analytics.StudentInfo, analytics.ProgressFacts, analytics.StressFacts)
	}
}

type noopLogger struct{}

func (noopLogger) Enable(bool)                  {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) *testEnv {
	// deterministic error payloads
	core.Conf.Debug = false
	core.Conf.TestMode = true

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}

	analyzer := sentiment.NewAnalyzer(0)
	moderator := moderation.NewModerator(moderation.Options{Analyzer: analyzer})
	factsRepo := inmemdb.NewFactsRepository(db)
	fbSvc := feedback.NewService(inmemdb.NewFeedbackRepository(db), analyzer)
	analyticsSvc := analytics.NewService(factsRepo, fbSvc, emailsvc.NewConsoleServiceMock(), noopLogger{}, core.Conf)

	server := NewServer(
		&Options{
			DisableReqLogs: true,
			Logger:         noopLogger{},
			Analyzer:       analyzer,
			Moderator:      moderator,
			FeedbackSvc:    fbSvc,
			AnalyticsSvc:   analyticsSvc,
			GradePolicy:    submission.DefaultPolicy(),
		},
	)

	return &testEnv{server: server, fbSvc: fbSvc, factsRepo: factsRepo}
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

func jsonBytes(t *testing.T, v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	return data
}

func checkCode(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	assert.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
