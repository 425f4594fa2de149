package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paperreward/internal/model"
)

// ComputeRewardRequest 奖励计算请求
type ComputeRewardRequest struct {
	Classification model.PaperClassification `json:"classification"`
	AuthorContext  model.AuthorContext       `json:"authorContext"`
}

// ComputeReward 计算奖励金额
// POST /api/reward/compute
func (h *Handler) ComputeReward(c *gin.Context) {
	var req ComputeRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	// 枚举校验在边界完成；核心引擎对未知值按兜底规则处理
	if !model.ValidJournalTier(req.Classification.JournalTier) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的期刊级别"})
		return
	}
	if !model.ValidAuthorRole(req.AuthorContext.AuthorRole) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的作者角色"})
		return
	}
	if req.Classification.ImpactFactor != nil && *req.Classification.ImpactFactor < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "影响因子不能为负数"})
		return
	}

	breakdown := h.engine.Compute(req.Classification, req.AuthorContext)
	c.JSON(http.StatusOK, breakdown)
}

// GetRewardRules 获取当前奖励规则表
// GET /api/reward/rules
func (h *Handler) GetRewardRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Rules())
}
