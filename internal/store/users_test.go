package store

import (
	"path/filepath"
	"testing"
	"time"

	"paperreward/internal/model"
)

// TestBootstrapAdminSeeded 全新库自带默认管理员
func TestBootstrapAdminSeeded(t *testing.T) {
	s := newTestStore(t)

	admin, err := s.GetUser("admin")
	if err != nil {
		t.Fatalf("查询默认管理员失败: %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("role = %s, want admin", admin.Role)
	}
}

// TestBootstrapAdminNotReseeded 用户表非空时重启不再写入默认管理员
func TestBootstrapAdminNotReseeded(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("创建存储失败: %v", err)
	}

	// 管理员被降级后重启，角色不能被种子逻辑还原
	admin, err := s.GetUser("admin")
	if err != nil {
		t.Fatalf("查询默认管理员失败: %v", err)
	}
	admin.Role = model.RoleReviewer
	if err := s.UpsertUser(admin); err != nil {
		t.Fatalf("更新用户失败: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("关闭存储失败: %v", err)
	}

	s, err = New(dbPath)
	if err != nil {
		t.Fatalf("重新打开存储失败: %v", err)
	}
	defer s.Close()

	admin, err = s.GetUser("admin")
	if err != nil {
		t.Fatalf("查询默认管理员失败: %v", err)
	}
	if admin.Role != model.RoleReviewer {
		t.Errorf("role = %s, want reviewer", admin.Role)
	}

	users, err := s.ListUsers()
	if err != nil {
		t.Fatalf("查询用户列表失败: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("用户数 = %d, want 1", len(users))
	}
}

// TestSyncUsersUpsert 批量同步对已有用户更新、对新用户插入
func TestSyncUsersUpsert(t *testing.T) {
	s := newTestStore(t)

	now := time.Now()
	batch := []*model.User{
		{ID: "zhang", Name: "张医师", Department: "内科", Role: model.RoleUser, CreatedAt: now},
		{ID: "li", Name: "李主任", Department: "外科", Role: model.RoleReviewer, CreatedAt: now},
	}
	if err := s.SyncUsers(batch); err != nil {
		t.Fatalf("同步用户失败: %v", err)
	}

	users, err := s.ListUsers()
	if err != nil {
		t.Fatalf("查询用户列表失败: %v", err)
	}
	if len(users) != 3 { // 含默认管理员
		t.Fatalf("用户数 = %d, want 3", len(users))
	}

	// 再次下发时角色变更生效
	batch[0].Role = model.RoleReviewer
	if err := s.SyncUsers(batch[:1]); err != nil {
		t.Fatalf("同步用户失败: %v", err)
	}

	zhang, err := s.GetUser("zhang")
	if err != nil {
		t.Fatalf("查询用户失败: %v", err)
	}
	if zhang.Role != model.RoleReviewer {
		t.Errorf("role = %s, want reviewer", zhang.Role)
	}
}
