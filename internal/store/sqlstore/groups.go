package sqlstore

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/rdesai/chatrelay/internal/models"
	"github.com/rdesai/chatrelay/internal/store"
)

func (s *SQLStore) CreateGroup(name string, members []string) (*models.Group, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	query := s.rebind("INSERT INTO chat_groups (id, name) VALUES (?, ?)")
	if _, err := tx.Exec(query, id, name); err != nil {
		return nil, err
	}

	memberQuery := s.rebind("INSERT INTO group_members (group_id, member) VALUES (?, ?)")
	for _, member := range members {
		if _, err := tx.Exec(memberQuery, id, member); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetGroup(id)
}

func (s *SQLStore) AddGroupMember(groupID, member string) error {
	group, err := s.GetGroup(groupID)
	if err != nil {
		return err
	}
	for _, m := range group.Members {
		if m == member {
			return store.ErrDuplicateMember
		}
	}

	query := s.rebind("INSERT INTO group_members (group_id, member) VALUES (?, ?)")
	_, err = s.db.Exec(query, groupID, member)
	return err
}

func (s *SQLStore) GetGroup(groupID string) (*models.Group, error) {
	var group models.Group
	query := s.rebind("SELECT id, name, created_at FROM chat_groups WHERE id = ?")
	err := s.db.QueryRow(query, groupID).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	query = s.rebind("SELECT member FROM group_members WHERE group_id = ? ORDER BY member ASC")
	rows, err := s.db.Query(query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	group.Members = []string{}
	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, err
		}
		group.Members = append(group.Members, member)
	}
	return &group, rows.Err()
}
