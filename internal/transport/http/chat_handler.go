// Copyright 2026 The Ruoom Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ruoomkr/platform/internal/audit"
	"github.com/ruoomkr/platform/internal/chathistory"
	"github.com/ruoomkr/platform/internal/observability/logger"
)

// ChatMessageRequest appends a line to the transcript
type ChatMessageRequest struct {
	Role string `json:"role" validate:"required,oneof=user bot" example:"user"`
	Text string `json:"text" validate:"required,max=4000" example:"예약 페이지는 어떻게 꾸미나요?"`
}

// GetChatHistory returns the user's transcript, oldest first
// @Summary Get Chat History
// @Tags Chat
// @Produce json
// @Security CookieAuth
// @Success 200 {array} chathistory.Message
// @Router /chat/history [get]
func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.chatStore.List(r.Context(), GetUserID(r.Context()))
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list chat history", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load chat history")
		return
	}
	if msgs == nil {
		msgs = []chathistory.Message{}
	}
	respondJSON(w, http.StatusOK, msgs)
}

// AppendChatMessage adds a message to the user's transcript
// @Summary Append Chat Message
// @Tags Chat
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body ChatMessageRequest true "Message"
// @Success 201 {object} chathistory.Message
// @Failure 400 {object} map[string]string
// @Router /chat/history [post]
func (h *Handler) AppendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req ChatMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg := chathistory.Message{Role: req.Role, Text: req.Text, At: time.Now().UTC()}
	if err := h.chatStore.Append(r.Context(), GetUserID(r.Context()), msg); err != nil {
		slog.ErrorContext(r.Context(), "failed to append chat message", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save chat message")
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

// ClearChatHistory deletes the user's transcript
// @Summary Clear Chat History
// @Tags Chat
// @Security CookieAuth
// @Success 204
// @Router /chat/history [delete]
func (h *Handler) ClearChatHistory(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	if err := h.chatStore.Clear(r.Context(), userID); err != nil {
		slog.ErrorContext(r.Context(), "failed to clear chat history", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to clear chat history")
		return
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeChatHistoryCleared,
		ActorID:   userID,
		Resource:  "chat_history",
		IPAddress: getIPAddress(r),
		UserAgent: r.UserAgent(),
	})
	w.WriteHeader(http.StatusNoContent)
}
