package model

import "time"

// UserRole 用户角色（由上游认证层解析后传入，核心只做能力判断）
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleReviewer UserRole = "reviewer"
	RoleUser     UserRole = "user"
)

// User 系统用户
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Role       UserRole  `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsPrivileged 是否具有审核权限（管理员或审核员）
func (u *User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleReviewer
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
