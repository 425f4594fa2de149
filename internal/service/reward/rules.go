package reward

import "paperreward/internal/model"

// ImpactBracket 影响因子分档：IF ≥ Min 时取 Amount
type ImpactBracket struct {
	Min    float64 `json:"min"`
	Amount int     `json:"amount"`
}

// ImpactBonus 影响因子加成档：IF ≥ Min 时加成 Percent（基础奖励的百分比）
type ImpactBonus struct {
	Min     float64 `json:"min"`
	Percent float64 `json:"percent"`
}

// NamedJournalBonus 特定期刊加成（期刊名精确匹配）
type NamedJournalBonus struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

// RuleTable 奖励规则表（静态配置数据，无行为）
type RuleTable struct {
	// SCI/SSCI 原著基础奖励与影响因子分档（按 Min 从高到低排列，取首个命中档）
	SCIOriginalBase     int             `json:"sciOriginalBase"`
	SCIOriginalBrackets []ImpactBracket `json:"sciOriginalBrackets"`

	// SCI/SSCI 非原著类型的固定奖励（与影响因子无关）
	SCIFlatAmounts map[model.PaperType]int `json:"sciFlatAmounts"`

	// 非SCI 各类型固定奖励
	NonSCIAmounts map[model.PaperType]int `json:"nonSciAmounts"`

	// 影响因子加成档（独立于基础奖励分档，按 Min 从高到低排列）
	ImpactBonuses []ImpactBonus `json:"impactBonuses"`

	// 特定期刊加成表，至多命中一项
	NamedJournals []NamedJournalBonus `json:"namedJournals"`

	// 单项主题加成百分比，三个主题相互独立可叠加
	ThemeBonusPercent float64 `json:"themeBonusPercent"`

	// 作者角色系数
	RoleMultipliers map[model.AuthorRole]float64 `json:"roleMultipliers"`
}

// DefaultRuleTable 现行奖励规则
func DefaultRuleTable() *RuleTable {
	return &RuleTable{
		SCIOriginalBase: 50000,
		SCIOriginalBrackets: []ImpactBracket{
			{Min: 5, Amount: 100000},
			{Min: 4, Amount: 80000},
			{Min: 3, Amount: 70000},
			{Min: 2, Amount: 60000},
		},
		SCIFlatAmounts: map[model.PaperType]int{
			model.PaperTypeCaseReport:    30000,
			model.PaperTypeReview:        40000,
			model.PaperTypeLetter:        20000,
			model.PaperTypeNote:          20000,
			model.PaperTypeCommunication: 20000,
			model.PaperTypeComment:       20000,
			model.PaperTypeImage:         10000,
		},
		NonSCIAmounts: map[model.PaperType]int{
			model.PaperTypeOriginal:       15000,
			model.PaperTypeCaseReport:     8000,
			model.PaperTypeReview:         10000,
			model.PaperTypeLetter:         5000,
			model.PaperTypeNote:           5000,
			model.PaperTypeCommunication:  5000,
			model.PaperTypeComment:        5000,
			model.PaperTypeAbstractOral:   3000,
			model.PaperTypeAbstractPoster: 2000,
			model.PaperTypeBookChapter:    10000,
			model.PaperTypeTranslation:    8000,
		},
		ImpactBonuses: []ImpactBonus{
			{Min: 10, Percent: 50},
			{Min: 5, Percent: 25},
		},
		NamedJournals: []NamedJournalBonus{
			{Name: "Nature", Percent: 100},
			{Name: "Science", Percent: 100},
			{Name: "Cell", Percent: 100},
			{Name: "The Lancet", Percent: 50},
			{Name: "The New England Journal of Medicine", Percent: 50},
			{Name: "JAMA", Percent: 50},
		},
		ThemeBonusPercent: 20,
		RoleMultipliers: map[model.AuthorRole]float64{
			model.AuthorRoleFirst:           1.0,
			model.AuthorRoleCorresponding:   1.0,
			model.AuthorRoleCoFirst:         1.0,
			model.AuthorRoleCoCorresponding: 1.0,
			model.AuthorRoleSecond:          0.5,
			model.AuthorRoleThirdToSixth:    0.2,
		},
	}
}
