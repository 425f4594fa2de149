package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paperreward/internal/ai"
	"paperreward/internal/model"
	"paperreward/internal/service/reward"
	"paperreward/internal/store"
)

// Handler API 处理器
type Handler struct {
	store    *store.Store
	engine   *reward.Engine
	analyzer ai.Analyzer
	datasets *datasetCache
}

// NewHandler 创建 API 处理器
func NewHandler(store *store.Store, analyzer ai.Analyzer) *Handler {
	return &Handler{
		store:    store,
		engine:   reward.NewEngine(reward.DefaultRuleTable()),
		analyzer: analyzer,
		datasets: newDatasetCache(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 用户同步（身份由上游网关解析，这里维护角色等基本信息）
	router.PUT("/users", h.SyncUsers)
	router.GET("/users", h.ListUsers)

	// 奖励计算
	router.POST("/reward/compute", h.ComputeReward)
	router.GET("/reward/rules", h.GetRewardRules)

	// 论文档案与 AI 分析
	router.POST("/papers/analyze", h.AnalyzePaper)
	router.POST("/papers", h.CreatePaper)
	router.GET("/papers", h.ListPapers)
	router.GET("/papers/:id", h.GetPaper)

	// 奖励申请
	router.POST("/applications", h.SubmitApplication)
	router.GET("/applications", h.ListApplications)
	router.GET("/applications/:id", h.GetApplication)
	router.POST("/applications/:id/review", h.ReviewApplication)
	router.DELETE("/applications/:id", h.CancelApplication)

	// 数据集上传与查询
	router.POST("/datasets", h.UploadDataset)
	router.GET("/datasets/:id/query", h.QueryDataset)
	router.GET("/datasets/:id/fulltext", h.GetDatasetFullText)
}

// requireUser 从请求头解析当前用户
// 身份认证由上游网关完成，这里只信任已解析的用户标识并查库取角色
func (h *Handler) requireUser(c *gin.Context) (*model.User, bool) {
	userID := c.GetHeader("X-User-Id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少用户身份"})
		return nil, false
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户不存在"})
		return nil, false
	}

	return user, true
}
