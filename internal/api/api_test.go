package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnwithai/backend/internal/ai"
	"github.com/learnwithai/backend/internal/catalog"
	"github.com/learnwithai/backend/internal/content"
	"github.com/learnwithai/backend/internal/generate"
	"github.com/learnwithai/backend/internal/language"
	"github.com/learnwithai/backend/internal/progress"
	"github.com/learnwithai/backend/internal/store"
)

type stubInvoker struct {
	response string
}

func (s *stubInvoker) Invoke(context.Context, string) (ai.Result, error) {
	return ai.Result{Provider: "mock", Text: s.response}, nil
}

type stubDetector struct{}

func (stubDetector) Detect(context.Context, string) language.Detection {
	return language.Detection{Language: "English"}
}

func testService(t *testing.T, response string) *generate.Service {
	t.Helper()
	inv := &stubInvoker{response: response}
	svc, err := generate.NewService(generate.ServiceConfig{
		Invokers: map[generate.Feature]generate.Invoker{
			generate.FeatureSummary:  inv,
			generate.FeatureMindMap:  inv,
			generate.FeatureQuiz:     inv,
			generate.FeatureLesson:   inv,
			generate.FeatureActivity: inv,
		},
		Detector: stubDetector{},
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func testHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.Service == nil {
		cfg.Service = testService(t, "{}")
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	return NewHandler(cfg).Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const summaryResponse = `{
  "chapterName": "Photosynthesis",
  "classLevel": 3,
  "mainTopics": [
    {"name": "Sunlight", "subTopics": [
      {"name": "Leaves", "keyPoints": [{"point": "Leaves are green", "description": "Green color catches light."}]}
    ]}
  ]
}`

func TestHandleSummary(t *testing.T) {
	h := testHandler(t, Config{Service: testService(t, summaryResponse)})

	rec := doJSON(t, h, "POST", "/api/v1/summary", map[string]any{
		"chapterName": "Photosynthesis",
		"chapterText": "Plants make food from light.",
		"classLevel":  3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var got content.SummaryStructure
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ChapterName != "Photosynthesis" || len(got.MainTopics) != 1 {
		t.Errorf("summary = %+v", got)
	}
}

func TestHandleSummary_BadRequest(t *testing.T) {
	h := testHandler(t, Config{})

	rec := doJSON(t, h, "POST", "/api/v1/summary", map[string]any{"classLevel": 3})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing chapterName: status = %d, want 400", rec.Code)
	}

	req := httptest.NewRequest("POST", "/api/v1/summary", strings.NewReader("not json"))
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec2.Code)
	}
}

func TestHandleSummary_PipelineFailure(t *testing.T) {
	// The model reply parses but fails shape validation.
	h := testHandler(t, Config{Service: testService(t, `{"mainTopics": []}`)})

	rec := doJSON(t, h, "POST", "/api/v1/summary", map[string]any{
		"chapterName": "X", "classLevel": 3,
	})
	if rec.Code == http.StatusOK {
		t.Fatal("invalid pipeline output returned 200")
	}

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Error == "" || env.Suggestion == "" {
		t.Errorf("error envelope = %+v, want message and suggestion", env)
	}
}

func TestContentCRUD(t *testing.T) {
	h := testHandler(t, Config{})

	save := doJSON(t, h, "POST", "/api/v1/content", content.SavedContent{
		Type:     content.TypeQuiz,
		Metadata: content.ContentMetadata{ChapterName: "Plants"},
		Data:     json.RawMessage(`{"questions": []}`),
	})
	if save.Code != http.StatusCreated {
		t.Fatalf("save status = %d, body %s", save.Code, save.Body)
	}
	var created map[string]string
	json.Unmarshal(save.Body.Bytes(), &created)
	key := created["key"]
	if key == "" {
		t.Fatal("save returned no key")
	}

	get := doJSON(t, h, "GET", "/api/v1/content/"+key, nil)
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d", get.Code)
	}

	list := doJSON(t, h, "GET", "/api/v1/content", nil)
	if list.Code != http.StatusOK || !strings.Contains(list.Body.String(), key) {
		t.Errorf("list status = %d, body %s", list.Code, list.Body)
	}

	del := doJSON(t, h, "DELETE", "/api/v1/content/"+key, nil)
	if del.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", del.Code)
	}

	gone := doJSON(t, h, "GET", "/api/v1/content/"+key, nil)
	if gone.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", gone.Code)
	}
}

func TestSaveContent_RejectsUnknownType(t *testing.T) {
	h := testHandler(t, Config{})

	rec := doJSON(t, h, "POST", "/api/v1/content", content.SavedContent{
		Type: "poster", Data: json.RawMessage(`{}`),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestQuizExport(t *testing.T) {
	st := store.NewMemoryStore()
	h := testHandler(t, Config{Store: st})

	quiz := content.Quiz{
		ChapterName: "Plants",
		Questions: []content.QuizQuestion{
			{Type: content.ShortAnswer, Question: "Q?", CorrectAnswer: content.Answer{Text: "A"}},
		},
	}
	data, _ := json.Marshal(quiz)
	key, err := st.Save(t.Context(), content.SavedContent{Type: content.TypeQuiz, Data: data})
	if err != nil {
		t.Fatal(err)
	}

	rec := doJSON(t, h, "GET", "/api/v1/quizzes/"+key+"/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	// Exporting a non-quiz under the quiz route is a client error.
	other, _ := st.Save(t.Context(), content.SavedContent{Type: content.TypeSummary, Data: json.RawMessage(`{}`)})
	bad := doJSON(t, h, "GET", "/api/v1/quizzes/"+other+"/export", nil)
	if bad.Code != http.StatusBadRequest {
		t.Errorf("non-quiz export status = %d, want 400", bad.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sekrit"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	h := testHandler(t, Config{TokenHash: string(hash)})

	noToken := doJSON(t, h, "GET", "/api/v1/content", nil)
	if noToken.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", noToken.Code)
	}

	req := httptest.NewRequest("GET", "/api/v1/content", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/v1/content", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", rec.Code)
	}

	// Health endpoints stay open.
	health := doJSON(t, h, "GET", "/healthz", nil)
	if health.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200 without auth", health.Code)
	}
}

func TestHandleUsage(t *testing.T) {
	usage := ai.NewInMemoryUsage()
	usage.Record("summary", 120)
	h := testHandler(t, Config{Usage: usage})

	rec := doJSON(t, h, "GET", "/api/v1/usage", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		PerFeature  map[string]int64 `json:"perFeature"`
		TotalTokens int64            `json:"totalTokens"`
	}
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.PerFeature["summary"] != 120 || got.TotalTokens != 120 {
		t.Errorf("usage = %+v", got)
	}

	without := testHandler(t, Config{})
	if rec := doJSON(t, without, "GET", "/api/v1/usage", nil); rec.Code != http.StatusNotFound {
		t.Errorf("usage without recorder status = %d, want 404", rec.Code)
	}
}

func TestProgressWebsocket(t *testing.T) {
	tracker := progress.NewMemoryTracker()
	if err := tracker.Set(t.Context(), "pres-1", 100); err != nil {
		t.Fatal(err)
	}
	h := testHandler(t, Config{Tracker: tracker})

	srv := httptest.NewServer(h)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/presentations/pres-1/progress"
	conn, _, err := websocket.Dial(t.Context(), wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.CloseNow()

	var ev progressEvent
	if err := wsjson.Read(t.Context(), conn, &ev); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if ev.PresentationID != "pres-1" || ev.Percent != 100 || !ev.Done {
		t.Errorf("event = %+v", ev)
	}
}

func TestHandleLessonPlan_BoardValidation(t *testing.T) {
	// Catalog with one board: unknown boards and unoffered subjects 400.
	dir := t.TempDir()
	boardYAML := "id: cbse\nname: CBSE\nsubjects:\n  - name: Science\n    from_class: 1\n    to_class: 8\n"
	if err := os.WriteFile(filepath.Join(dir, "cbse.yaml"), []byte(boardYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	boards, err := catalog.NewLoader(dir)
	if err != nil {
		t.Fatal(err)
	}

	h := testHandler(t, Config{Boards: boards})

	rec := doJSON(t, h, "POST", "/api/v1/lesson-plan", generate.LessonPlanRequest{
		Board: "state-x", ClassLevel: 5, Subject: "Science", Topic: "Water",
		TotalMinutes: 90, DesiredLectures: 2,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown board status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, "POST", "/api/v1/lesson-plan", generate.LessonPlanRequest{
		Board: "cbse", ClassLevel: 10, Subject: "Science", Topic: "Water",
		TotalMinutes: 90, DesiredLectures: 2,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unoffered class status = %d, want 400", rec.Code)
	}
}
