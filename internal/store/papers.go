package store

import (
	"database/sql"
	"fmt"

	"paperreward/internal/model"
)

// InsertPaper 插入论文档案
func (s *Store) InsertPaper(p *model.Paper) error {
	_, err := s.db.Exec(`
		INSERT INTO papers (
			id, title, authors, journal_name, journal_tier, paper_type,
			impact_factor, volume, issue, pages, doi, abstract,
			holistic_care, medical_quality, medical_education, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Title, p.Authors, p.JournalName, p.JournalTier, p.PaperType,
		nullableFloat(p.ImpactFactor), p.Volume, p.Issue, p.Pages, p.DOI, p.Abstract,
		boolToInt(p.ThemeFlags.HolisticCare), boolToInt(p.ThemeFlags.MedicalQuality),
		boolToInt(p.ThemeFlags.MedicalEducation), p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert paper: %w", err)
	}
	return nil
}

// GetPaper 获取单篇论文
func (s *Store) GetPaper(id string) (*model.Paper, error) {
	row := s.db.QueryRow(`
		SELECT id, title, authors, journal_name, journal_tier, paper_type,
		       impact_factor, volume, issue, pages, doi, abstract,
		       holistic_care, medical_quality, medical_education, created_at
		FROM papers WHERE id = ?
	`, id)

	paper, err := scanPaper(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("paper not found: %s", id)
		}
		return nil, err
	}
	return paper, nil
}

// ListPapers 获取论文列表（按创建时间倒序）
func (s *Store) ListPapers(limit, offset int) ([]*model.Paper, error) {
	query := `
		SELECT id, title, authors, journal_name, journal_tier, paper_type,
		       impact_factor, volume, issue, pages, doi, abstract,
		       holistic_care, medical_quality, medical_education, created_at
		FROM papers ORDER BY created_at DESC`
	args := []interface{}{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
		if offset > 0 {
			query += " OFFSET ?"
			args = append(args, offset)
		}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query papers: %w", err)
	}
	defer rows.Close()

	papers := make([]*model.Paper, 0)
	for rows.Next() {
		paper, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, paper)
	}

	return papers, rows.Err()
}

func scanPaper(row rowScanner) (*model.Paper, error) {
	var p model.Paper
	var impactFactor sql.NullFloat64
	var holistic, quality, education int

	err := row.Scan(
		&p.ID, &p.Title, &p.Authors, &p.JournalName, &p.JournalTier, &p.PaperType,
		&impactFactor, &p.Volume, &p.Issue, &p.Pages, &p.DOI, &p.Abstract,
		&holistic, &quality, &education, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if impactFactor.Valid {
		v := impactFactor.Float64
		p.ImpactFactor = &v
	}
	p.ThemeFlags = model.ThemeFlags{
		HolisticCare:     holistic != 0,
		MedicalQuality:   quality != 0,
		MedicalEducation: education != 0,
	}

	return &p, nil
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
