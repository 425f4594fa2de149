package reward

import (
	"fmt"
	"math"
	"strings"

	"paperreward/internal/model"
	"paperreward/internal/util"
)

// Engine 奖励计算引擎
// 纯函数式：相同输入必得相同结果，任何合法输入都能算出金额，不产生错误
type Engine struct {
	rules *RuleTable
}

// NewEngine 创建计算引擎
func NewEngine(rules *RuleTable) *Engine {
	if rules == nil {
		rules = DefaultRuleTable()
	}
	return &Engine{rules: rules}
}

// Rules 获取当前规则表
func (e *Engine) Rules() *RuleTable {
	return e.rules
}

// Compute 计算奖励
// 未知论文类型按对应级别的"原著"处理；影响因子缺省时不分档、不加成
func (e *Engine) Compute(c model.PaperClassification, a model.AuthorContext) *model.RewardBreakdown {
	base := e.baseAmount(c)

	bonuses := make([]model.RewardAdjustment, 0, 5)
	deductions := make([]model.RewardAdjustment, 0)

	// 影响因子加成：独立于基础奖励分档，两者可同时生效
	if isSCITier(c.JournalTier) && c.ImpactFactor != nil {
		for _, b := range e.rules.ImpactBonuses {
			if *c.ImpactFactor >= b.Min {
				bonuses = append(bonuses, model.RewardAdjustment{
					Type:        model.AdjustmentImpactFactor,
					Description: fmt.Sprintf("影响因子 ≥ %g 加成 %s", b.Min, util.FormatPercent(b.Percent)),
					Percent:     b.Percent,
					Amount:      percentOf(base, b.Percent),
				})
				break
			}
		}
	}

	// 特定期刊加成：精确匹配（去除首尾空白），至多一项
	journalName := strings.TrimSpace(c.JournalName)
	for _, nj := range e.rules.NamedJournals {
		if journalName == nj.Name {
			bonuses = append(bonuses, model.RewardAdjustment{
				Type:        model.AdjustmentNamedJournal,
				Description: fmt.Sprintf("%s 期刊加成 %s", nj.Name, util.FormatPercent(nj.Percent)),
				Percent:     nj.Percent,
				Amount:      percentOf(base, nj.Percent),
			})
			break
		}
	}

	// 主题加成：三项独立叠加
	for _, theme := range activeThemes(a.ThemeFlags) {
		bonuses = append(bonuses, model.RewardAdjustment{
			Type:        model.AdjustmentTheme,
			Description: fmt.Sprintf("%s主题加成 %s", theme, util.FormatPercent(e.rules.ThemeBonusPercent)),
			Percent:     e.rules.ThemeBonusPercent,
			Amount:      percentOf(base, e.rules.ThemeBonusPercent),
		})
	}

	subtotal := base
	for _, b := range bonuses {
		subtotal += b.Amount
	}
	for _, d := range deductions {
		subtotal -= d.Amount
	}

	multiplier := e.roleMultiplier(a.AuthorRole)
	total := roundHalfUp(float64(subtotal) * multiplier)

	return &model.RewardBreakdown{
		BaseAmount:  base,
		Bonuses:     bonuses,
		Deductions:  deductions,
		TotalAmount: total,
		Formula:     buildFormula(base, bonuses, deductions, a.AuthorRole, multiplier, total),
	}
}

// baseAmount 基础奖励选档
func (e *Engine) baseAmount(c model.PaperClassification) int {
	if isSCITier(c.JournalTier) {
		// 非原著类型取固定金额；未知类型回落到原著口径
		if amount, ok := e.rules.SCIFlatAmounts[c.PaperType]; ok {
			return amount
		}
		if c.ImpactFactor != nil {
			for _, b := range e.rules.SCIOriginalBrackets {
				if *c.ImpactFactor >= b.Min {
					return b.Amount
				}
			}
		}
		return e.rules.SCIOriginalBase
	}

	if amount, ok := e.rules.NonSCIAmounts[c.PaperType]; ok {
		return amount
	}
	return e.rules.NonSCIAmounts[model.PaperTypeOriginal]
}

// roleMultiplier 作者角色系数，未知角色按 1.0 处理
func (e *Engine) roleMultiplier(role model.AuthorRole) float64 {
	if m, ok := e.rules.RoleMultipliers[role]; ok {
		return m
	}
	return 1.0
}

// buildFormula 生成人工可读的推导式
// 顺序固定：基础奖励 → 各项加成 → 各项扣减 → 角色系数（为 1 时省略）→ 最终金额
func buildFormula(base int, bonuses, deductions []model.RewardAdjustment, role model.AuthorRole, multiplier float64, total int) string {
	var sb strings.Builder
	sb.WriteString("基础奖励 ")
	sb.WriteString(util.FormatAmount(base))

	for _, b := range bonuses {
		sb.WriteString(" + ")
		sb.WriteString(b.Description)
		sb.WriteString(" ")
		sb.WriteString(util.FormatAmount(b.Amount))
	}
	for _, d := range deductions {
		sb.WriteString(" - ")
		sb.WriteString(d.Description)
		sb.WriteString(" ")
		sb.WriteString(util.FormatAmount(d.Amount))
	}

	if multiplier != 1.0 {
		switch role {
		case model.AuthorRoleSecond:
			sb.WriteString(" × 第二作者 50%")
		case model.AuthorRoleThirdToSixth:
			sb.WriteString(" × 第三至第六作者 20%")
		default:
			sb.WriteString(" × " + util.FormatPercent(multiplier*100))
		}
	}

	sb.WriteString(" = ")
	sb.WriteString(util.FormatAmount(total))
	sb.WriteString(" 元")
	return sb.String()
}

// activeThemes 命中的主题名称（顺序固定）
func activeThemes(flags model.ThemeFlags) []string {
	themes := make([]string, 0, 3)
	if flags.HolisticCare {
		themes = append(themes, "整体照护")
	}
	if flags.MedicalQuality {
		themes = append(themes, "医疗品质")
	}
	if flags.MedicalEducation {
		themes = append(themes, "医学教育")
	}
	return themes
}

func isSCITier(tier model.JournalTier) bool {
	return tier == model.JournalTierSCI || tier == model.JournalTierSSCI
}

// percentOf 按百分比取基础奖励的整数金额，四舍五入
func percentOf(base int, percent float64) int {
	return roundHalfUp(float64(base) * percent / 100)
}

// roundHalfUp 四舍五入到整数
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
