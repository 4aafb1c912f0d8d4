package sqlstore

import (
	"testing"

	"github.com/rdesai/chatrelay/internal/models"
)

func TestSaveMessageAndGetConversation(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.SaveMessage(&models.Message{Sender: "alice", Receiver: "bob", Text: "hi", Time: "10:00"})
	testStore.SaveMessage(&models.Message{Sender: "bob", Receiver: "alice", Text: "hey", Time: "10:01"})
	testStore.SaveMessage(&models.Message{Sender: "alice", Receiver: "carol", Text: "other chat", Time: "10:02"})

	messages, err := testStore.GetConversation("alice", "bob")
	if err != nil {
		t.Fatalf("Failed to get conversation: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}

	// Oldest first
	if messages[0].Text != "hi" || messages[1].Text != "hey" {
		t.Errorf("Expected messages in creation order, got %q then %q", messages[0].Text, messages[1].Text)
	}

	// Both participants see the same history
	reversed, _ := testStore.GetConversation("bob", "alice")
	if len(reversed) != 2 {
		t.Errorf("Expected 2 messages for reversed pair, got %d", len(reversed))
	}
}

func TestMarkConversationRead(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.SaveMessage(&models.Message{Sender: "bob", Receiver: "alice", Text: "one", Time: "10:00"})
	testStore.SaveMessage(&models.Message{Sender: "bob", Receiver: "alice", Text: "two", Time: "10:01"})
	testStore.SaveMessage(&models.Message{Sender: "alice", Receiver: "bob", Text: "reply", Time: "10:02"})

	updated, err := testStore.MarkConversationRead("bob", "alice")
	if err != nil {
		t.Fatalf("Failed to mark conversation read: %v", err)
	}
	if updated != 2 {
		t.Errorf("Expected 2 updated rows, got %d", updated)
	}

	// Already-read messages are not updated again
	updated, _ = testStore.MarkConversationRead("bob", "alice")
	if updated != 0 {
		t.Errorf("Expected 0 updated rows on second call, got %d", updated)
	}

	fromBob, _ := testStore.GetConversationFrom("bob", "alice")
	for _, m := range fromBob {
		if !m.Read {
			t.Errorf("Expected message %q to be read", m.Text)
		}
	}

	// The opposite direction stays untouched
	fromAlice, _ := testStore.GetConversationFrom("alice", "bob")
	if len(fromAlice) != 1 || fromAlice[0].Read {
		t.Error("Expected alice's own message to stay unread")
	}
}

func TestGetGroupMessages(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.SaveMessage(&models.Message{Sender: "alice", Text: "hello group", Time: "10:00", GroupID: "g1"})
	testStore.SaveMessage(&models.Message{Sender: "bob", Text: "hi alice", Time: "10:01", GroupID: "g1"})
	testStore.SaveMessage(&models.Message{Sender: "carol", Text: "elsewhere", Time: "10:02", GroupID: "g2"})

	messages, err := testStore.GetGroupMessages("g1")
	if err != nil {
		t.Fatalf("Failed to get group messages: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}

	if messages[0].Text != "hello group" {
		t.Errorf("Expected oldest message first, got %q", messages[0].Text)
	}
}
