package store

import (
	"database/sql"
	"fmt"
	"time"

	"paperreward/internal/model"
)

// GetUser 获取用户
func (s *Store) GetUser(id string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(`
		SELECT id, name, department, role, created_at FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Department, &u.Role, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %s", id)
		}
		return nil, err
	}
	return &u, nil
}

// UpsertUser 插入或更新用户（身份信息来自上游认证层）
func (s *Store) UpsertUser(u *model.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, department, role, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
		    department = excluded.department, role = excluded.role
	`, u.ID, u.Name, u.Department, u.Role, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// SyncUsers 批量同步用户（单事务内逐条写入，供上游网关下发在册用户）
func (s *Store) SyncUsers(users []*model.User) error {
	tx, err := s.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, u := range users {
		_, err := tx.Exec(`
			INSERT INTO users (id, name, department, role, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			    department = excluded.department, role = excluded.role
		`, u.ID, u.Name, u.Department, u.Role, u.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to sync user %s: %w", u.ID, err)
		}
	}

	return tx.Commit()
}

// ensureBootstrapAdmin 首次启动时写入默认管理员
// 全新部署的用户表为空，没有默认身份则任何接口都无法访问；
// 后续用户由管理员通过用户同步接口下发
func (s *Store) ensureBootstrapAdmin() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.UpsertUser(&model.User{
		ID:        "admin",
		Name:      "系统管理员",
		Role:      model.RoleAdmin,
		CreatedAt: time.Now(),
	})
}

// ListUsers 获取全部用户
func (s *Store) ListUsers() ([]*model.User, error) {
	rows, err := s.db.Query("SELECT id, name, department, role, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Department, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}
