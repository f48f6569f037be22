package tests

import (
	"encoding/json"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/note-widget/app/api/handlers"
	"github.com/ribgsilva/note-widget/business/v1/board"
	"github.com/ribgsilva/note-widget/business/v1/note"
	"github.com/ribgsilva/note-widget/business/v1/widget"
	"github.com/ribgsilva/note-widget/platform/web/handler"
	"github.com/ribgsilva/note-widget/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type NoteTests struct {
	app   http.Handler
	board *board.Board
}

func newNoteTests() NoteTests {
	gin.SetMode(gin.TestMode)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Widget.Title = "Notes"
	sys.Configs.Widget.Priorities = []string{"Low", "Medium", "High"}
	sys.Configs.Widget.DefaultPriority = "Medium"

	// =======================================================================================================
	// Setup resources
	log := zap.NewNop().Sugar()
	sys.R.Log = log

	b := board.New()
	w := widget.New(log, b, sys.Configs.Widget.DefaultPriority)

	// =======================================================================================================
	// Setup router
	engine := gin.New()
	handlers.MapDefaults(engine)
	handlers.MapApi(engine, w, b)

	return NoteTests{app: engine, board: b}
}

func TestNote(t *testing.T) {
	t.Run("healthcheck", func(t *testing.T) {
		nt := newNoteTests()
		nt.healthcheck200(t)
	})
	t.Run("page", func(t *testing.T) {
		nt := newNoteTests()
		nt.submitForm303(t)
		nt.submitForm422(t)
		nt.submitEscapes(t)
	})
	t.Run("api", func(t *testing.T) {
		nt := newNoteTests()
		nt.createNote201(t)
		nt.createNote400(t)
		nt.listNotes200(t)
	})
}

func (nt *NoteTests) postForm(title, content, priority string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("title", title)
	form.Set("content", content)
	form.Set("priority", priority)

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) getPage(t *testing.T) string {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code, "Test getPage: Should receive a status code of 200")
	return w.Body.String()
}

func (nt *NoteTests) healthcheck200(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func (nt *NoteTests) submitForm303(t *testing.T) {
	w := nt.postForm("Buy milk", "2% fat", "Medium")
	require.Equal(t, http.StatusSeeOther, w.Code, "Test submitForm303: Should receive a status code of 303")
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Equal(t, 1, nt.board.Len())

	page := nt.getPage(t)
	assert.Contains(t, page, "<h3>Buy milk</h3>")
	assert.Contains(t, page, "<p>2% fat</p>")
	assert.Contains(t, page, `<span class="priority-label medium">Medium</span>`)
	assert.Contains(t, page, `<input id="title" name="title" type="text" value="">`)
}

func (nt *NoteTests) submitForm422(t *testing.T) {
	before := nt.board.Len()

	w := nt.postForm("   ", "kept draft", "High")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, "Test submitForm422: Should receive a status code of 422")

	page := w.Body.String()
	assert.Contains(t, page, note.RequiredMessage)
	assert.Contains(t, page, "kept draft</textarea>")
	assert.Contains(t, page, `<option value="High" selected>High</option>`)
	assert.Equal(t, before, nt.board.Len(), "Test submitForm422: Should not add a note")

	w = nt.postForm("title", "", "Low")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, before, nt.board.Len())
}

func (nt *NoteTests) submitEscapes(t *testing.T) {
	w := nt.postForm("<b>hi</b>", `<script>alert("x")</script>`, "High")
	require.Equal(t, http.StatusSeeOther, w.Code)

	page := nt.getPage(t)
	assert.Contains(t, page, "<h3>&lt;b&gt;hi&lt;/b&gt;</h3>")
	assert.NotContains(t, page, "<b>hi</b>")
	assert.NotContains(t, page, "<script>")
}

func (nt *NoteTests) createNote201(t *testing.T) {
	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"title":"note %d","content":"content %d","priority":"HIGH"}`, i, i)
		r := httptest.NewRequest(http.MethodPost, "/v1/notes", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		nt.app.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code, "Test createNote201: Should receive a status code of 201: %s", w.Body.String())

		var resp note.Note
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, fmt.Sprintf("note %d", i), resp.Title)
		assert.Equal(t, "high", resp.Class())
	}
}

func (nt *NoteTests) createNote400(t *testing.T) {
	before := nt.board.Len()

	for _, body := range []string{`{"title":"","content":"x"}`, `{"title":"x","content":" "}`, `not json`} {
		r := httptest.NewRequest(http.MethodPost, "/v1/notes", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		nt.app.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code, "Test createNote400: Should receive a status code of 400 for %s", body)

		var resp handler.Error
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Message)
	}

	assert.Equal(t, before, nt.board.Len())
}

func (nt *NoteTests) listNotes200(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []note.Note
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 3)
	for i, n := range resp {
		assert.Equal(t, fmt.Sprintf("note %d", i), n.Title)
	}
}
