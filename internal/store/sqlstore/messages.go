package sqlstore

import (
	"database/sql"

	"github.com/rdesai/chatrelay/internal/models"
)

const messageColumns = "id, sender, receiver, body, display_time, is_read, receipt_delivered, group_id, created_at"

func (s *SQLStore) SaveMessage(m *models.Message) error {
	query := s.rebind(`
		INSERT INTO messages (sender, receiver, body, display_time, is_read, receipt_delivered, group_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := s.db.Exec(query, m.Sender, m.Receiver, m.Text, m.Time, m.Read, m.ReceiptDelivered, m.GroupID)
	return err
}

// GetConversation returns both directions of a private conversation, oldest
// first. The id tie-break keeps same-instant messages in insertion order.
func (s *SQLStore) GetConversation(userA, userB string) ([]models.Message, error) {
	query := s.rebind(`
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)
		ORDER BY created_at ASC, id ASC
	`)
	rows, err := s.db.Query(query, userA, userB, userB, userA)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

// GetConversationFrom returns only the messages sent by sender to receiver,
// oldest first.
func (s *SQLStore) GetConversationFrom(sender, receiver string) ([]models.Message, error) {
	query := s.rebind(`
		SELECT ` + messageColumns + `
		FROM messages
		WHERE sender = ? AND receiver = ?
		ORDER BY created_at ASC, id ASC
	`)
	rows, err := s.db.Query(query, sender, receiver)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

// MarkConversationRead flags every unread message from sender to receiver as
// read and returns how many rows changed.
func (s *SQLStore) MarkConversationRead(sender, receiver string) (int64, error) {
	query := s.rebind("UPDATE messages SET is_read = TRUE WHERE sender = ? AND receiver = ? AND is_read = FALSE")
	result, err := s.db.Exec(query, sender, receiver)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQLStore) GetGroupMessages(groupID string) ([]models.Message, error) {
	query := s.rebind(`
		SELECT ` + messageColumns + `
		FROM messages
		WHERE group_id = ?
		ORDER BY created_at ASC, id ASC
	`)
	rows, err := s.db.Query(query, groupID)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Receiver, &m.Text, &m.Time, &m.Read, &m.ReceiptDelivered, &m.GroupID, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
