package model

// AdjustmentType 奖励加减项类型
type AdjustmentType string

const (
	AdjustmentImpactFactor AdjustmentType = "impact_factor" // 影响因子加成
	AdjustmentNamedJournal AdjustmentType = "named_journal" // 特定期刊加成
	AdjustmentTheme        AdjustmentType = "theme"         // 主题加成
)

// RewardAdjustment 单项加成或扣减
// Percent 为基础奖励的百分比，Amount 为按其计算并四舍五入后的整数金额
type RewardAdjustment struct {
	Type        AdjustmentType `json:"type"`
	Description string         `json:"description"`
	Percent     float64        `json:"percent"`
	Amount      int            `json:"amount"`
}

// RewardBreakdown 奖励计算结果（一次计算生成，不再修改）
// TotalAmount = round((BaseAmount + Σ加成 − Σ扣减) × 作者角色系数)
type RewardBreakdown struct {
	BaseAmount  int                `json:"baseAmount"`
	Bonuses     []RewardAdjustment `json:"bonuses"`
	Deductions  []RewardAdjustment `json:"deductions"`
	TotalAmount int                `json:"totalAmount"`
	Formula     string             `json:"formula"`
}
