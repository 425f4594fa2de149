package model

// Sheet 工作表：首行推导的列头 + 按列头取值的数据行
// 作为分页结果片段返回时，RowCount 为来源工作表过滤后的总行数，而非片段行数
type Sheet struct {
	Name     string              `json:"name"`
	Headers  []string            `json:"headers"`
	Rows     []map[string]string `json:"rows"`
	RowCount int                 `json:"rowCount"`
}

// Dataset 解析后的多工作表数据集，解析完成后不再修改
// FullTextIndex 为全部工作表拼接出的纯文本渲染，供下游全文消费使用
type Dataset struct {
	Sheets        []*Sheet `json:"sheets"`
	FullTextIndex string   `json:"-"`
}

// TotalRows 数据集总行数
func (d *Dataset) TotalRows() int {
	total := 0
	for _, s := range d.Sheets {
		total += len(s.Rows)
	}
	return total
}

// FilteredView 过滤/分页后的只读视图
type FilteredView struct {
	Sheets     []*Sheet `json:"sheets"`
	TotalRows  int      `json:"totalRows"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"totalPages"`
}
