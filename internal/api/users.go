package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"paperreward/internal/model"
)

// SyncUsersRequest 用户同步请求（上游网关定期下发在册用户）
type SyncUsersRequest struct {
	Users []SyncUserItem `json:"users"`
}

// SyncUserItem 单个用户条目，角色缺省为普通用户
type SyncUserItem struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	Role       model.UserRole `json:"role"`
}

// SyncUsers 批量同步用户（仅管理员）
// PUT /api/users
func (h *Handler) SyncUsers(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "仅管理员可同步用户"})
		return
	}

	var req SyncUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Users) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	now := time.Now()
	users := make([]*model.User, 0, len(req.Users))
	for _, item := range req.Users {
		if item.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "用户标识不能为空"})
			return
		}
		role := item.Role
		if role == "" {
			role = model.RoleUser
		}
		switch role {
		case model.RoleAdmin, model.RoleReviewer, model.RoleUser:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户角色"})
			return
		}
		users = append(users, &model.User{
			ID:         item.ID,
			Name:       item.Name,
			Department: item.Department,
			Role:       role,
			CreatedAt:  now,
		})
	}

	if err := h.store.SyncUsers(users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存用户失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"synced": len(users)})
}

// ListUsers 获取全部用户（仅管理员）
// GET /api/users
func (h *Handler) ListUsers(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	if !user.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "仅管理员可查看用户列表"})
		return
	}

	users, err := h.store.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询用户失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}
