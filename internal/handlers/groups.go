package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rdesai/chatrelay/internal/store"
)

type GroupHandler struct {
	Store store.Store
}

type CreateGroupRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type AddMemberRequest struct {
	Member string `json:"member"`
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || len(req.Members) == 0 {
		respondError(w, http.StatusBadRequest, "Group name and members are required")
		return
	}

	group, err := h.Store.CreateGroup(req.Name, req.Members)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Group created successfully",
		"group":   group,
	})
}

func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["id"]

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Member == "" {
		respondError(w, http.StatusBadRequest, "Member name is required")
		return
	}

	err := h.Store.AddGroupMember(groupID, req.Member)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Group not found")
		return
	case errors.Is(err, store.ErrDuplicateMember):
		respondError(w, http.StatusBadRequest, "Member already in group")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	group, err := h.Store.GetGroup(groupID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Member added successfully",
		"group":   group,
	})
}
