package handlers

import (
	"net/http"

	"github.com/rdesai/chatrelay/internal/store"
)

type MessageHandler struct {
	Store store.Store
}

func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	sender := r.URL.Query().Get("sender")
	receiver := r.URL.Query().Get("receiver")
	if sender == "" || receiver == "" {
		respondError(w, http.StatusBadRequest, "Sender and receiver are required")
		return
	}

	messages, err := h.Store.GetConversation(sender, receiver)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching messages")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

func (h *MessageHandler) GetGroupMessages(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("groupId")
	if groupID == "" {
		respondError(w, http.StatusBadRequest, "Group ID is required")
		return
	}

	messages, err := h.Store.GetGroupMessages(groupID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching group messages")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
