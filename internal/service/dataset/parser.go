package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"paperreward/internal/model"
)

// Parse 将工作簿解析为数据集
// 每个工作表以首行作列头，数据行按列头取值（缺失单元格补空字符串）；
// 同时生成按行拼接的全文索引，供下游全文消费，避免每次查询重新推导
func Parse(reader io.Reader) (*model.Dataset, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	ds := &model.Dataset{
		Sheets: make([]*model.Sheet, 0, len(file.GetSheetList())),
	}

	var fullText strings.Builder

	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			continue
		}

		sheet := buildSheet(name, rows)
		ds.Sheets = append(ds.Sheets, sheet)
		appendFullText(&fullText, sheet)
	}

	ds.FullTextIndex = fullText.String()
	return ds, nil
}

// buildSheet 由原始行构建工作表
func buildSheet(name string, rows [][]string) *model.Sheet {
	sheet := &model.Sheet{
		Name:    name,
		Headers: []string{},
		Rows:    []map[string]string{},
	}

	if len(rows) == 0 {
		return sheet
	}

	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}
	sheet.Headers = headers

	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			record[header] = getCell(row, i)
		}
		sheet.Rows = append(sheet.Rows, record)
	}
	sheet.RowCount = len(sheet.Rows)

	return sheet
}

// appendFullText 追加工作表的全文渲染块
// 格式：[sheet: 名称] + 列头行 + 逐条数据行，单元格以竖线连接
func appendFullText(sb *strings.Builder, sheet *model.Sheet) {
	sb.WriteString(fmt.Sprintf("[sheet: %s]\n", sheet.Name))
	sb.WriteString(strings.Join(sheet.Headers, " | "))
	sb.WriteString("\n")

	for _, row := range sheet.Rows {
		cells := make([]string, 0, len(sheet.Headers))
		for _, header := range sheet.Headers {
			cells = append(cells, row[header])
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
	}
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
