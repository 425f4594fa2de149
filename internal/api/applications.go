package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paperreward/internal/model"
	"paperreward/internal/service/application"
	"paperreward/internal/store"
)

// SubmitApplicationRequest 提交申请请求
type SubmitApplicationRequest struct {
	PaperID         string              `json:"paperId"`
	ApplicantType   model.ApplicantType `json:"applicantType"`
	EstimatedAmount *int                `json:"estimatedAmount,omitempty"`
	// 提交时的奖励明细（由 /reward/compute 产生），仅作留档，不参与审核
	Breakdown *model.RewardBreakdown `json:"breakdown,omitempty"`
}

// SubmitApplication 提交奖励申请
// POST /api/applications
func (h *Handler) SubmitApplication(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}
	if req.PaperID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少论文标识"})
		return
	}
	switch req.ApplicantType {
	case model.ApplicantFirstAuthor, model.ApplicantCorresponding, model.ApplicantCoAuthor:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的申请人类型"})
		return
	}
	if _, err := h.store.GetPaper(req.PaperID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "论文不存在"})
		return
	}

	estimated := req.EstimatedAmount
	if estimated == nil && req.Breakdown != nil {
		estimated = &req.Breakdown.TotalAmount
	}

	record := application.Submit(req.PaperID, user, req.ApplicantType, estimated)
	if err := h.store.InsertApplication(record, req.Breakdown); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存申请失败"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListApplications 查询申请列表（普通用户仅可见本人申请）
// GET /api/applications?status=pending
func (h *Handler) ListApplications(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	status := model.ApplicationStatus(c.Query("status"))
	if status != "" && !model.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的状态"})
		return
	}

	filter := application.FilterForUser(user, status)
	records, err := h.store.ListApplications(store.ApplicationQueryOptions{
		ApplicantID: filter.ApplicantID,
		Status:      string(filter.Status),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询申请失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": records, "total": len(records)})
}

// GetApplication 获取单条申请
// GET /api/applications/:id
func (h *Handler) GetApplication(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	record, err := h.store.GetApplication(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "申请不存在"})
		return
	}
	if !user.IsPrivileged() && record.ApplicantID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "无权查看该申请"})
		return
	}

	breakdown, _ := h.store.GetApplicationBreakdown(record.ID)
	c.JSON(http.StatusOK, gin.H{"application": record, "breakdown": breakdown})
}

// ReviewApplicationRequest 审核请求
type ReviewApplicationRequest struct {
	Decision model.ApplicationStatus `json:"decision"`
	Comment  string                  `json:"comment"`
	// 审核通过时可覆盖奖励金额，不提供则保留提交时的预估值
	RewardAmount *int `json:"rewardAmount,omitempty"`
}

// ReviewApplication 审核申请
// POST /api/applications/:id/review
func (h *Handler) ReviewApplication(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	record, err := h.store.GetApplication(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "申请不存在"})
		return
	}

	if err := application.Review(record, user, req.Decision, req.Comment, req.RewardAmount); err != nil {
		writeLifecycleError(c, err)
		return
	}

	if err := h.store.UpdateApplication(record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存审核结果失败"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// CancelApplication 撤销申请（仅限 pending 状态，撤销后记录删除）
// DELETE /api/applications/:id
func (h *Handler) CancelApplication(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	record, err := h.store.GetApplication(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "申请不存在"})
		return
	}

	if err := application.CanCancel(record, user); err != nil {
		writeLifecycleError(c, err)
		return
	}

	if err := h.store.DeleteApplication(record.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "撤销申请失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "申请已撤销"})
}

// writeLifecycleError 将生命周期业务错误映射为 HTTP 响应
func writeLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "无权执行该操作"})
	case errors.Is(err, application.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "仅待审核状态的申请可以撤销或流转"})
	case errors.Is(err, application.ErrInvalidDecision):
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的审核结论"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
