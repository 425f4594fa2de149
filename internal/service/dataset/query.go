package dataset

import (
	"math"
	"strings"

	"paperreward/internal/model"
)

// DefaultLimit 未指定每页行数时的默认值
const DefaultLimit = 50

// FilterOptions 查询选项
// 过滤顺序：限定工作表 → 列投影 → 关键字过滤 → 跨表分页
type FilterOptions struct {
	Search    string   // 关键字，任一单元格包含即保留该行（不区分大小写）
	SheetName string   // 非空时仅查询该工作表
	Columns   []string // 非空时仅保留这些列（各表缺失的列静默忽略）
	Page      int      // 1-based 页码
	Limit     int      // 每页行数
}

// Filter 对已解析数据集做过滤分页，返回只读视图，不修改数据集本身
// 工作表/列/页码不存在时返回空结果而非错误
func Filter(ds *model.Dataset, opts FilterOptions) *model.FilteredView {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	// 限定工作表、列投影、关键字过滤
	filtered := make([]*model.Sheet, 0, len(ds.Sheets))
	for _, sheet := range ds.Sheets {
		if opts.SheetName != "" && sheet.Name != opts.SheetName {
			continue
		}
		filtered = append(filtered, filterSheet(sheet, opts))
	}

	totalRows := 0
	for _, s := range filtered {
		totalRows += len(s.Rows)
	}
	totalPages := int(math.Ceil(float64(totalRows) / float64(limit)))

	// 跨表分页：各表过滤后的行拼成一条逻辑序列，按全局偏移切片
	startIndex := (page - 1) * limit
	remaining := limit
	passed := 0

	pageSheets := make([]*model.Sheet, 0, len(filtered))
	for _, sheet := range filtered {
		if remaining <= 0 {
			break
		}
		// 整表落在起始偏移之前时直接跳过
		if passed+len(sheet.Rows) <= startIndex {
			passed += len(sheet.Rows)
			continue
		}

		localStart := 0
		if startIndex > passed {
			localStart = startIndex - passed
		}
		passed += len(sheet.Rows)

		localEnd := localStart + remaining
		if localEnd > len(sheet.Rows) {
			localEnd = len(sheet.Rows)
		}
		remaining -= localEnd - localStart

		// RowCount 保留来源工作表过滤后的总行数，与页面片段行数无关
		pageSheets = append(pageSheets, &model.Sheet{
			Name:     sheet.Name,
			Headers:  sheet.Headers,
			Rows:     sheet.Rows[localStart:localEnd],
			RowCount: len(sheet.Rows),
		})
	}

	return &model.FilteredView{
		Sheets:     pageSheets,
		TotalRows:  totalRows,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// filterSheet 对单个工作表做列投影与关键字过滤，返回新表
func filterSheet(sheet *model.Sheet, opts FilterOptions) *model.Sheet {
	headers := sheet.Headers
	if len(opts.Columns) > 0 {
		headers = projectHeaders(sheet.Headers, opts.Columns)
	}

	search := strings.ToLower(strings.TrimSpace(opts.Search))

	rows := make([]map[string]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		projected := row
		if len(opts.Columns) > 0 {
			projected = make(map[string]string, len(headers))
			for _, h := range headers {
				projected[h] = row[h]
			}
		}

		// 关键字在列投影之后匹配，只扫描保留下来的列
		if search != "" && !rowMatches(projected, search) {
			continue
		}
		rows = append(rows, projected)
	}

	return &model.Sheet{
		Name:     sheet.Name,
		Headers:  headers,
		Rows:     rows,
		RowCount: len(rows),
	}
}

// projectHeaders 按请求列顺序保留工作表中存在的列
func projectHeaders(headers, columns []string) []string {
	exists := make(map[string]bool, len(headers))
	for _, h := range headers {
		exists[h] = true
	}

	result := make([]string, 0, len(columns))
	for _, c := range columns {
		if exists[c] {
			result = append(result, c)
		}
	}
	return result
}

// rowMatches 任一单元格包含关键字即命中
func rowMatches(row map[string]string, search string) bool {
	for _, value := range row {
		if strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}
