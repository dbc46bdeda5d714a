package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luckteesid/luckbot/internal/core"
	"github.com/luckteesid/luckbot/internal/service/faq"
	"github.com/luckteesid/luckbot/internal/service/memory"
	"github.com/luckteesid/luckbot/internal/service/reply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponder struct {
	sessions []string
	texts    []string
	panic    bool
}

func (s *stubResponder) Respond(ctx context.Context, sessionID, text string) string {
	if s.panic {
		panic("boom")
	}
	s.sessions = append(s.sessions, sessionID)
	s.texts = append(s.texts, text)
	return "echo: " + text
}

func (s *stubResponder) Reset(ctx context.Context, sessionID string) {}

func newTestHandler(r core.Responder) http.Handler {
	return NewServer(context.Background(), ":0", r).Handler(context.Background())
}

func postChat(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body=%s", w.Body.String())
	return w, resp
}

func TestChat_OK(t *testing.T) {
	r := &stubResponder{}
	w, resp := postChat(t, newTestHandler(r), `{"message":"halo","session_id":"abc"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "echo: halo", resp.Reply)
	assert.Equal(t, "abc", resp.SessionID)
	assert.Equal(t, []string{"web-abc"}, r.sessions)
}

func TestChat_AssignsSessionID(t *testing.T) {
	r := &stubResponder{}
	_, resp := postChat(t, newTestHandler(r), `{"message":"halo"}`)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, []string{"web-" + resp.SessionID}, r.sessions)
}

func TestChat_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing message", body: `{"session_id":"abc"}`},
		{name: "null message", body: `{"message":null}`},
		{name: "empty body", body: ``},
		{name: "not json", body: `message=halo`},
		{name: "wrong type", body: `{"message": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stubResponder{}
			w, resp := postChat(t, newTestHandler(r), tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, EmptyMessageReply, resp.Reply)
			assert.Empty(t, r.texts)
		})
	}
}

func TestChat_BlankMessageIsResolved(t *testing.T) {
	r := &stubResponder{}
	w, _ := postChat(t, newTestHandler(r), `{"message":"   "}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"   "}, r.texts)
}

func TestChat_PanicIsHidden(t *testing.T) {
	w, resp := postChat(t, newTestHandler(&stubResponder{panic: true}), `{"message":"halo"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, reply.ApologyReply, resp.Reply)
}

func TestChat_WrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()
	newTestHandler(&stubResponder{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestIndexAndHealth(t *testing.T) {
	h := newTestHandler(&stubResponder{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lucktees.id")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type scriptedCompleter struct{ reply string }

func (s scriptedCompleter) Complete(ctx context.Context, systemPrompt, userMessage, history string) (string, error) {
	return s.reply, nil
}

func TestChat_EndToEnd(t *testing.T) {
	store := faq.New([]core.FAQEntry{{Keywords: []string{"harga"}, Answer: "Silakan chat admin untuk harga."}})
	resolver := reply.NewResolver(store, scriptedCompleter{reply: "Estimasi *3-5* hari kerja ya kak <3"}, reply.HistoryWindow)
	chat := reply.NewChat(resolver, memory.NewStore(memory.Config{}))
	h := newTestHandler(chat)

	tests := []struct {
		message string
		want    string
	}{
		{message: "berapa harga kaos?", want: "Silakan chat admin untuk harga."},
		{message: "halo", want: reply.WelcomeReply},
		{message: "kapan pesanan saya jadi?", want: "Estimasi 3-5 hari kerja ya kak 3"},
		{message: "", want: reply.EmptyInputReply},
	}

	for _, tt := range tests {
		body, err := json.Marshal(map[string]string{"message": tt.message, "session_id": "e2e"})
		require.NoError(t, err)

		w, resp := postChat(t, h, string(body))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tt.want, resp.Reply, tt.message)
	}
}
