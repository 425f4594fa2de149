package model

import "time"

// PaperType 论文类型
type PaperType string

const (
	PaperTypeOriginal       PaperType = "original"        // 原著
	PaperTypeCaseReport     PaperType = "case_report"     // 病例报告
	PaperTypeReview         PaperType = "review"          // 综述
	PaperTypeLetter         PaperType = "letter"          // Letter
	PaperTypeNote           PaperType = "note"            // Note
	PaperTypeCommunication  PaperType = "communication"   // 短篇通讯
	PaperTypeImage          PaperType = "image"           // 影像图片
	PaperTypeAbstractPoster PaperType = "abstract_poster" // 会议摘要（壁报）
	PaperTypeAbstractOral   PaperType = "abstract_oral"   // 会议摘要（口头报告）
	PaperTypeComment        PaperType = "comment"         // 评论
	PaperTypeBookChapter    PaperType = "book_chapter"    // 专著章节
	PaperTypeTranslation    PaperType = "translation"     // 译著
)

// ValidPaperType 判断论文类型是否在已知枚举内
func ValidPaperType(t PaperType) bool {
	switch t {
	case PaperTypeOriginal, PaperTypeCaseReport, PaperTypeReview,
		PaperTypeLetter, PaperTypeNote, PaperTypeCommunication,
		PaperTypeImage, PaperTypeAbstractPoster, PaperTypeAbstractOral,
		PaperTypeComment, PaperTypeBookChapter, PaperTypeTranslation:
		return true
	}
	return false
}

// JournalTier 期刊级别
type JournalTier string

const (
	JournalTierSCI    JournalTier = "sci"
	JournalTierSSCI   JournalTier = "ssci"
	JournalTierNonSCI JournalTier = "non_sci" // 非SCI（含国内期刊）
)

// ValidJournalTier 判断期刊级别是否在已知枚举内
func ValidJournalTier(t JournalTier) bool {
	return t == JournalTierSCI || t == JournalTierSSCI || t == JournalTierNonSCI
}

// AuthorRole 作者角色
type AuthorRole string

const (
	AuthorRoleFirst           AuthorRole = "first"            // 第一作者
	AuthorRoleCorresponding   AuthorRole = "corresponding"    // 通讯作者
	AuthorRoleCoFirst         AuthorRole = "co_first"         // 共同第一作者
	AuthorRoleCoCorresponding AuthorRole = "co_corresponding" // 共同通讯作者
	AuthorRoleSecond          AuthorRole = "second"           // 第二作者
	AuthorRoleThirdToSixth    AuthorRole = "third_to_sixth"   // 第三至第六作者
)

// ValidAuthorRole 判断作者角色是否在已知枚举内
func ValidAuthorRole(r AuthorRole) bool {
	switch r {
	case AuthorRoleFirst, AuthorRoleCorresponding, AuthorRoleCoFirst,
		AuthorRoleCoCorresponding, AuthorRoleSecond, AuthorRoleThirdToSixth:
		return true
	}
	return false
}

// PaperClassification 论文分类属性（奖励计算输入，构造后不再修改）
type PaperClassification struct {
	PaperType    PaperType   `json:"paperType"`
	JournalTier  JournalTier `json:"journalTier"`
	ImpactFactor *float64    `json:"impactFactor,omitempty"` // 影响因子，可缺省
	JournalName  string      `json:"journalName"`
}

// ThemeFlags 主题加成标记，三项相互独立
type ThemeFlags struct {
	HolisticCare     bool `json:"holisticCare"`     // 整体照护
	MedicalQuality   bool `json:"medicalQuality"`   // 医疗品质
	MedicalEducation bool `json:"medicalEducation"` // 医学教育
}

// AuthorContext 申请人作者信息（奖励计算输入）
type AuthorContext struct {
	AuthorRole AuthorRole `json:"authorRole"`
	ThemeFlags ThemeFlags `json:"themeFlags"`
}

// Paper 论文档案（AI 抽取字段落库后的形态）
type Paper struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Authors      string      `json:"authors"`
	JournalName  string      `json:"journalName"`
	JournalTier  JournalTier `json:"journalTier"`
	PaperType    PaperType   `json:"paperType"`
	ImpactFactor *float64    `json:"impactFactor,omitempty"`
	Volume       string      `json:"volume"`
	Issue        string      `json:"issue"`
	Pages        string      `json:"pages"`
	DOI          string      `json:"doi"`
	Abstract     string      `json:"abstract"`
	ThemeFlags   ThemeFlags  `json:"themeFlags"`
	CreatedAt    time.Time   `json:"createdAt"`
}
