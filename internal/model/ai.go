package model

// ExtractedFields AI 从原文抽取的文献字段
type ExtractedFields struct {
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Journal  string `json:"journal"`
	Volume   string `json:"volume"`
	Issue    string `json:"issue"`
	Pages    string `json:"pages"`
	DOI      string `json:"doi"`
	Abstract string `json:"abstract"`
}

// ContentAnalysis AI 对论文内容主题的判断
type ContentAnalysis struct {
	HolisticCare     bool     `json:"holisticCare"`
	MedicalQuality   bool     `json:"medicalQuality"`
	MedicalEducation bool     `json:"medicalEducation"`
	Themes           []string `json:"themes"`
}

// PaperAnalysis AI 文本分析结果（外部服务契约，本系统只消费不复现）
type PaperAnalysis struct {
	PaperType       PaperType       `json:"paperType"`
	Confidence      float64         `json:"confidence"` // 0-1
	ExtractedFields ExtractedFields `json:"extractedFields"`
	ContentAnalysis ContentAnalysis `json:"contentAnalysis"`
}
