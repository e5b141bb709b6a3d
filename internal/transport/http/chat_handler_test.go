package http

import (
	"net/http"
	"testing"

	"github.com/ruoomkr/platform/internal/audit"
	"github.com/ruoomkr/platform/internal/chathistory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPurpose: Validates chat history append, cap, per-user isolation and clear over HTTP.
// Scope: Unit Test
// Expected: Only the newest messages up to the cap are returned oldest first; other users see nothing; DELETE empties the transcript.
// Test Case ID: CHAT-HTTP-01
func TestChatHistory_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signIn(t, "alice@ruoom.kr")
	bob := env.signIn(t, "bob@ruoom.kr")

	for _, text := range []string{"안녕하세요", "예약 페이지 문의", "감사합니다", "마지막 질문"} {
		resp := env.do(t, http.MethodPost, "/api/v1/chat/history", alice, ChatMessageRequest{Role: "user", Text: text})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := env.do(t, http.MethodGet, "/api/v1/chat/history", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msgs := decode[[]chathistory.Message](t, resp)
	require.Len(t, msgs, 3, "store is capped at 3 in tests")
	assert.Equal(t, "예약 페이지 문의", msgs[0].Text)
	assert.Equal(t, "마지막 질문", msgs[2].Text)

	resp = env.do(t, http.MethodGet, "/api/v1/chat/history", bob, nil)
	assert.Empty(t, decode[[]chathistory.Message](t, resp))

	resp = env.do(t, http.MethodDelete, "/api/v1/chat/history", alice, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/api/v1/chat/history", alice, nil)
	assert.Empty(t, decode[[]chathistory.Message](t, resp))
	assert.Contains(t, env.audit.types(), audit.TypeChatHistoryCleared)
}

func TestChatHistory_RejectsInvalidMessages(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, "alice@ruoom.kr")

	for _, body := range []ChatMessageRequest{
		{Role: "admin", Text: "hi"},
		{Role: "user", Text: ""},
		{Role: "", Text: "hi"},
	} {
		resp := env.do(t, http.MethodPost, "/api/v1/chat/history", cookie, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%+v", body)
	}
}
