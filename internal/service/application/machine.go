package application

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"paperreward/internal/model"
)

// 业务错误：均为可恢复条件，由 HTTP 层转成用户提示
var (
	// ErrInvalidTransition 状态流转不被允许
	ErrInvalidTransition = errors.New("only pending applications may be cancelled")
	// ErrNotAuthorized 操作者不具备所需权限
	ErrNotAuthorized = errors.New("not authorized for this operation")
	// ErrInvalidDecision 审核结论不在允许范围内
	ErrInvalidDecision = errors.New("decision must be approved, rejected or revision")
)

// Submit 创建申请，初始状态为 pending
// 奖励金额取调用方传入的预估值，提交阶段不做重算
func Submit(paperID string, applicant *model.User, applicantType model.ApplicantType, estimatedAmount *int) *model.ApplicationRecord {
	now := time.Now()
	return &model.ApplicationRecord{
		ID:            uuid.New().String(),
		PaperID:       paperID,
		ApplicantID:   applicant.ID,
		ApplicantType: applicantType,
		Status:        model.StatusPending,
		RewardAmount:  estimatedAmount,
		SubmittedAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// canTransition 审核结论的状态流转规则
// approved/rejected 仅可从 pending 或 revision 进入；revision 仅可从 pending 进入
func canTransition(from, to model.ApplicationStatus) bool {
	switch to {
	case model.StatusApproved, model.StatusRejected:
		return from == model.StatusPending || from == model.StatusRevision
	case model.StatusRevision:
		return from == model.StatusPending
	default:
		return false
	}
}

// Review 审核申请，直接修改传入的记录
// decision 为 approved 时：若提供 overrideAmount 则覆盖奖励金额，否则保留提交时的预估值；
// 任何情况下 RewardAmount 只会被覆盖，不会被清空
func Review(record *model.ApplicationRecord, reviewer *model.User, decision model.ApplicationStatus, comment string, overrideAmount *int) error {
	if !reviewer.IsPrivileged() {
		return ErrNotAuthorized
	}
	if decision != model.StatusApproved && decision != model.StatusRejected && decision != model.StatusRevision {
		return ErrInvalidDecision
	}
	if !canTransition(record.Status, decision) {
		return ErrInvalidTransition
	}

	now := time.Now()
	record.Status = decision
	record.ReviewedBy = reviewer.ID
	record.ReviewedAt = &now
	record.ReviewComment = comment
	record.UpdatedAt = now

	if decision == model.StatusApproved && overrideAmount != nil {
		record.RewardAmount = overrideAmount
	}

	return nil
}

// CanCancel 校验撤销申请的前提条件
// 仅申请人本人（或管理员）可撤销，且仅限 pending 状态；实际删除由存储层执行
func CanCancel(record *model.ApplicationRecord, requester *model.User) error {
	if requester.ID != record.ApplicantID && !requester.IsAdmin() {
		return ErrNotAuthorized
	}
	if record.Status != model.StatusPending {
		return ErrInvalidTransition
	}
	return nil
}

// ListFilter 申请列表的可见性过滤条件
type ListFilter struct {
	ApplicantID string                  // 非空时仅返回该申请人的记录
	Status      model.ApplicationStatus // 非空时按状态过滤
}

// FilterForUser 根据请求者角色计算可见性过滤条件
// 普通用户只能看到自己的申请；管理员/审核员可看全部并按状态筛选
func FilterForUser(requester *model.User, status model.ApplicationStatus) ListFilter {
	if requester.IsPrivileged() {
		return ListFilter{Status: status}
	}
	return ListFilter{ApplicantID: requester.ID, Status: status}
}
