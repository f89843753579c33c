package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fable/pkg/store"
	"fable/pkg/story"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := story.NewService(nil, nil) // mock generator only
	svc.SetMockDelay(time.Millisecond)
	st := store.Open(filepath.Join(t.TempDir(), "stories.json"))
	return NewServer(svc, st)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthRoute(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ok")
}

func TestPostStoryCreatesAndPersists(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/stories",
		`{"prompt":"a story about the sea","childName":"Mia","childAge":6}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var st story.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.NotEmpty(t, st.ID)
	require.NotEmpty(t, st.Title)
	require.GreaterOrEqual(t, len(st.Pages), 1)

	require.Equal(t, 1, s.Store.Len())
	stored, ok := s.Store.Get(st.ID)
	require.True(t, ok)
	require.Equal(t, st.Title, stored.Title)
}

func TestPostStoryInvalidJSON(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/stories", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStoriesNewestFirst(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/api/stories", `{"prompt":"first"}`)
	doJSON(t, s, http.MethodPost, "/api/stories", `{"prompt":"second"}`)

	rec := doJSON(t, s, http.MethodGet, "/api/stories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []story.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Contains(t, list[0].Prompt, "second")
	require.Contains(t, list[1].Prompt, "first")
}

func TestGetStoryByID(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/stories", `{"prompt":"find me"}`)
	var created story.Story
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, s, http.MethodGet, "/api/stories/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/stories/story_missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStoriesResetsStore(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/api/stories", `{"prompt":"doomed"}`)
	require.Equal(t, 1, s.Store.Len())

	rec := doJSON(t, s, http.MethodDelete, "/api/stories", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 0, s.Store.Len())
}

func TestGetTemplates(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/api/templates", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Templates []string `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Templates, 8)
}

func TestGetStorySchema(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/api/stories/schema", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pages")
	require.Contains(t, rec.Body.String(), "title")
}
