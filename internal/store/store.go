package store

import (
	"errors"

	"github.com/rdesai/chatrelay/internal/models"
)

var (
	ErrNotFound        = errors.New("store: not found")
	ErrDuplicateMember = errors.New("store: member already in group")
)

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)

	// Message operations
	SaveMessage(m *models.Message) error
	GetConversation(userA, userB string) ([]models.Message, error)
	GetConversationFrom(sender, receiver string) ([]models.Message, error)
	MarkConversationRead(sender, receiver string) (int64, error)
	GetGroupMessages(groupID string) ([]models.Message, error)

	// Group operations
	CreateGroup(name string, members []string) (*models.Group, error)
	AddGroupMember(groupID, member string) error
	GetGroup(groupID string) (*models.Group, error)
}
