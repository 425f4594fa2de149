package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paperreward/internal/store"
)

// Version 当前版本号
const Version = "1.2.0"

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	pending, err := h.store.ListApplications(store.ApplicationQueryOptions{Status: "pending"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询状态失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":             Version,
		"pendingApplications": len(pending),
	})
}
