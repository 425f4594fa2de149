package model

import "time"

// ApplicationStatus 申请状态
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"  // 待审核
	StatusApproved ApplicationStatus = "approved" // 已通过
	StatusRejected ApplicationStatus = "rejected" // 已驳回
	StatusRevision ApplicationStatus = "revision" // 退回修改
)

// ValidStatus 判断状态是否在已知枚举内
func ValidStatus(s ApplicationStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected || s == StatusRevision
}

// ApplicantType 申请人类型
type ApplicantType string

const (
	ApplicantFirstAuthor   ApplicantType = "first_author"
	ApplicantCorresponding ApplicantType = "corresponding"
	ApplicantCoAuthor      ApplicantType = "co_author"
)

// ApplicationRecord 奖励申请记录
// 创建时为 pending，之后仅由审核流程修改；RewardAmount 只会被覆盖，不会被清空
type ApplicationRecord struct {
	ID            string            `json:"id"`
	PaperID       string            `json:"paperId"`
	ApplicantID   string            `json:"applicantId"`
	ApplicantType ApplicantType     `json:"applicantType"`
	Status        ApplicationStatus `json:"status"`
	RewardAmount  *int              `json:"rewardAmount,omitempty"` // 审核通过时确认的金额
	ReviewedBy    string            `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time        `json:"reviewedAt,omitempty"`
	ReviewComment string            `json:"reviewComment,omitempty"`
	SubmittedAt   time.Time         `json:"submittedAt"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
