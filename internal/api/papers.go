package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paperreward/internal/ai"
	"paperreward/internal/model"
)

// AnalyzePaperRequest AI 文本分析请求
type AnalyzePaperRequest struct {
	Text string `json:"text"`
}

// AnalyzePaper 提交论文原文给 AI 分析服务
// POST /api/papers/analyze
func (h *Handler) AnalyzePaper(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	var req AnalyzePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少论文原文"})
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI 分析服务未配置"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI 分析失败"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// CreatePaperRequest 创建论文档案请求（字段通常来自 AI 分析结果，允许人工修正）
type CreatePaperRequest struct {
	Title        string            `json:"title"`
	Authors      string            `json:"authors"`
	JournalName  string            `json:"journalName"`
	JournalTier  model.JournalTier `json:"journalTier"`
	PaperType    model.PaperType   `json:"paperType"`
	ImpactFactor *float64          `json:"impactFactor,omitempty"`
	Volume       string            `json:"volume"`
	Issue        string            `json:"issue"`
	Pages        string            `json:"pages"`
	DOI          string            `json:"doi"`
	Abstract     string            `json:"abstract"`
	ThemeFlags   model.ThemeFlags  `json:"themeFlags"`
}

// CreatePaper 创建论文档案
// POST /api/papers
func (h *Handler) CreatePaper(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	var req CreatePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少论文标题"})
		return
	}
	if !model.ValidJournalTier(req.JournalTier) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的期刊级别"})
		return
	}
	if !model.ValidPaperType(req.PaperType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的论文类型"})
		return
	}

	paper := &model.Paper{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Authors:      req.Authors,
		JournalName:  req.JournalName,
		JournalTier:  req.JournalTier,
		PaperType:    req.PaperType,
		ImpactFactor: req.ImpactFactor,
		Volume:       req.Volume,
		Issue:        req.Issue,
		Pages:        req.Pages,
		DOI:          req.DOI,
		Abstract:     req.Abstract,
		ThemeFlags:   req.ThemeFlags,
		CreatedAt:    time.Now(),
	}

	if err := h.store.InsertPaper(paper); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存论文失败"})
		return
	}

	c.JSON(http.StatusCreated, paper)
}

// ListPapers 获取论文列表
// GET /api/papers?limit=20&offset=0
func (h *Handler) ListPapers(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	papers, err := h.store.ListPapers(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询论文失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"papers": papers, "total": len(papers)})
}

// GetPaper 获取单篇论文
// GET /api/papers/:id
func (h *Handler) GetPaper(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	paper, err := h.store.GetPaper(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "论文不存在"})
		return
	}

	c.JSON(http.StatusOK, paper)
}
