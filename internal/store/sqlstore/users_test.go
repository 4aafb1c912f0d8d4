package sqlstore

import (
	"errors"
	"testing"

	"github.com/rdesai/chatrelay/internal/models"
	"github.com/rdesai/chatrelay/internal/store"
)

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	err := testStore.CreateUser(&models.User{Email: "alice@example.com", Password: "hashed"})
	if err != nil {
		t.Errorf("Failed to create user: %v", err)
	}

	// Test duplicate user
	err = testStore.CreateUser(&models.User{Email: "alice@example.com", Password: "hashed"})
	if err == nil {
		t.Error("Expected error when creating duplicate user, got nil")
	}
}

func TestGetUserByEmail(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateUser(&models.User{Email: "alice@example.com", Password: "hashed"})

	user, err := testStore.GetUserByEmail("alice@example.com")
	if err != nil {
		t.Errorf("Failed to get user: %v", err)
	}

	if user.Email != "alice@example.com" {
		t.Errorf("Expected email 'alice@example.com', got '%s'", user.Email)
	}

	_, err = testStore.GetUserByEmail("nobody@example.com")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}
}
