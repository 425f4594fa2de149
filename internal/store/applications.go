package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"paperreward/internal/model"
)

// ApplicationQueryOptions 申请列表查询选项
type ApplicationQueryOptions struct {
	ApplicantID string // 非空时仅查询该申请人
	Status      string // 非空时按状态过滤
	Limit       int
	Offset      int
}

// InsertApplication 插入申请记录，breakdown 可为空
func (s *Store) InsertApplication(record *model.ApplicationRecord, breakdown *model.RewardBreakdown) error {
	breakdownJSON := ""
	if breakdown != nil {
		data, err := json.Marshal(breakdown)
		if err != nil {
			return fmt.Errorf("failed to marshal breakdown: %w", err)
		}
		breakdownJSON = string(data)
	}

	_, err := s.db.Exec(`
		INSERT INTO applications (
			id, paper_id, applicant_id, applicant_type, status,
			reward_amount, reward_breakdown,
			reviewed_by, reviewed_at, review_comment,
			submitted_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID, record.PaperID, record.ApplicantID, record.ApplicantType, record.Status,
		nullableInt(record.RewardAmount), breakdownJSON,
		record.ReviewedBy, record.ReviewedAt, record.ReviewComment,
		record.SubmittedAt, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}
	return nil
}

// GetApplication 获取单条申请
func (s *Store) GetApplication(id string) (*model.ApplicationRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, paper_id, applicant_id, applicant_type, status,
		       reward_amount, reviewed_by, reviewed_at, review_comment,
		       submitted_at, created_at, updated_at
		FROM applications WHERE id = ?
	`, id)

	record, err := scanApplication(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("application not found: %s", id)
		}
		return nil, err
	}
	return record, nil
}

// UpdateApplication 更新审核相关字段
func (s *Store) UpdateApplication(record *model.ApplicationRecord) error {
	_, err := s.db.Exec(`
		UPDATE applications
		SET status = ?, reward_amount = ?, reviewed_by = ?, reviewed_at = ?,
		    review_comment = ?, updated_at = ?
		WHERE id = ?
	`,
		record.Status, nullableInt(record.RewardAmount), record.ReviewedBy, record.ReviewedAt,
		record.ReviewComment, record.UpdatedAt, record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// DeleteApplication 删除申请（仅用于撤销 pending 申请）
func (s *Store) DeleteApplication(id string) error {
	_, err := s.db.Exec("DELETE FROM applications WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}

// ListApplications 查询申请列表
func (s *Store) ListApplications(opts ApplicationQueryOptions) ([]*model.ApplicationRecord, error) {
	query := `
		SELECT id, paper_id, applicant_id, applicant_type, status,
		       reward_amount, reviewed_by, reviewed_at, review_comment,
		       submitted_at, created_at, updated_at
		FROM applications WHERE 1=1`
	args := []interface{}{}

	if opts.ApplicantID != "" {
		query += " AND applicant_id = ?"
		args = append(args, opts.ApplicantID)
	}
	if opts.Status != "" {
		query += " AND status = ?"
		args = append(args, opts.Status)
	}

	query += " ORDER BY submitted_at DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	records := make([]*model.ApplicationRecord, 0)
	for rows.Next() {
		record, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetApplicationBreakdown 获取申请提交时留存的奖励明细
func (s *Store) GetApplicationBreakdown(id string) (*model.RewardBreakdown, error) {
	var breakdownJSON string
	err := s.db.QueryRow("SELECT reward_breakdown FROM applications WHERE id = ?", id).Scan(&breakdownJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("application not found: %s", id)
		}
		return nil, err
	}
	if breakdownJSON == "" {
		return nil, nil
	}

	var breakdown model.RewardBreakdown
	if err := json.Unmarshal([]byte(breakdownJSON), &breakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal breakdown: %w", err)
	}
	return &breakdown, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApplication(row rowScanner) (*model.ApplicationRecord, error) {
	var record model.ApplicationRecord
	var rewardAmount sql.NullInt64
	var reviewedAt sql.NullTime

	err := row.Scan(
		&record.ID, &record.PaperID, &record.ApplicantID, &record.ApplicantType, &record.Status,
		&rewardAmount, &record.ReviewedBy, &reviewedAt, &record.ReviewComment,
		&record.SubmittedAt, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rewardAmount.Valid {
		amount := int(rewardAmount.Int64)
		record.RewardAmount = &amount
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		record.ReviewedAt = &t
	}

	return &record, nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
