package dataset

import (
	"fmt"
	"testing"

	"paperreward/internal/model"
)

// makeTestDataset 构造三表数据集：行数分别为 3 / 4 / 2
func makeTestDataset() *model.Dataset {
	sheets := []*model.Sheet{}
	rowCounts := []int{3, 4, 2}

	for si, count := range rowCounts {
		name := fmt.Sprintf("表%d", si+1)
		sheet := &model.Sheet{
			Name:    name,
			Headers: []string{"编号", "标题"},
			Rows:    []map[string]string{},
		}
		for ri := 0; ri < count; ri++ {
			sheet.Rows = append(sheet.Rows, map[string]string{
				"编号": fmt.Sprintf("S%d-R%d", si+1, ri+1),
				"标题": fmt.Sprintf("论文 %d-%d", si+1, ri+1),
			})
		}
		sheet.RowCount = len(sheet.Rows)
		sheets = append(sheets, sheet)
	}

	return &model.Dataset{Sheets: sheets}
}

// collectIDs 按顺序收集视图中所有行的编号
func collectIDs(view *model.FilteredView) []string {
	ids := []string{}
	for _, sheet := range view.Sheets {
		for _, row := range sheet.Rows {
			ids = append(ids, row["编号"])
		}
	}
	return ids
}

// TestFilterRoundTrip 一页取全量时返回每一行且保持原序
func TestFilterRoundTrip(t *testing.T) {
	ds := makeTestDataset()
	view := Filter(ds, FilterOptions{Page: 1, Limit: ds.TotalRows()})

	if view.TotalRows != 9 || view.TotalPages != 1 {
		t.Fatalf("totalRows/totalPages = %d/%d, want 9/1", view.TotalRows, view.TotalPages)
	}

	ids := collectIDs(view)
	expected := []string{"S1-R1", "S1-R2", "S1-R3", "S2-R1", "S2-R2", "S2-R3", "S2-R4", "S3-R1", "S3-R2"}
	if len(ids) != len(expected) {
		t.Fatalf("rows = %d, want %d", len(ids), len(expected))
	}
	for i, id := range expected {
		if ids[i] != id {
			t.Errorf("第 %d 行 = %s, want %s", i, ids[i], id)
		}
	}
}

// TestPaginationCompleteness 逐页拼接与全量结果一致，无重复无遗漏
func TestPaginationCompleteness(t *testing.T) {
	ds := makeTestDataset()

	for _, limit := range []int{1, 2, 4, 5, 9, 20} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			full := collectIDs(Filter(ds, FilterOptions{Page: 1, Limit: 100}))

			first := Filter(ds, FilterOptions{Page: 1, Limit: limit})
			collected := []string{}
			for page := 1; page <= first.TotalPages; page++ {
				view := Filter(ds, FilterOptions{Page: page, Limit: limit})
				collected = append(collected, collectIDs(view)...)
			}

			if len(collected) != len(full) {
				t.Fatalf("拼接行数 = %d, want %d", len(collected), len(full))
			}
			for i := range full {
				if collected[i] != full[i] {
					t.Errorf("第 %d 行 = %s, want %s", i, collected[i], full[i])
				}
			}
		})
	}
}

// TestPaginationSpansSheets 页切片跨表：第二页应同时包含表2尾行与表3
func TestPaginationSpansSheets(t *testing.T) {
	ds := makeTestDataset()
	view := Filter(ds, FilterOptions{Page: 2, Limit: 5})

	ids := collectIDs(view)
	expected := []string{"S2-R3", "S2-R4", "S3-R1", "S3-R2"}
	if len(ids) != len(expected) {
		t.Fatalf("rows = %v, want %v", ids, expected)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("第 %d 行 = %s, want %s", i, ids[i], expected[i])
		}
	}
	if len(view.Sheets) != 2 {
		t.Errorf("片段数 = %d, want 2", len(view.Sheets))
	}
}

// TestFragmentRowCount 片段 rowCount 为来源表过滤后的总行数，而非片段行数
func TestFragmentRowCount(t *testing.T) {
	ds := makeTestDataset()
	view := Filter(ds, FilterOptions{Page: 1, Limit: 2})

	if len(view.Sheets) != 1 {
		t.Fatalf("片段数 = %d, want 1", len(view.Sheets))
	}
	fragment := view.Sheets[0]
	if len(fragment.Rows) != 2 {
		t.Errorf("片段行数 = %d, want 2", len(fragment.Rows))
	}
	if fragment.RowCount != 3 {
		t.Errorf("rowCount = %d, want 来源表总行数 3", fragment.RowCount)
	}
}

// TestFilterBySheetName 限定工作表；不存在时返回空结果而非错误
func TestFilterBySheetName(t *testing.T) {
	ds := makeTestDataset()

	t.Run("命中", func(t *testing.T) {
		view := Filter(ds, FilterOptions{SheetName: "表2", Page: 1, Limit: 10})
		if view.TotalRows != 4 || len(view.Sheets) != 1 {
			t.Errorf("totalRows = %d, sheets = %d, want 4/1", view.TotalRows, len(view.Sheets))
		}
	})

	t.Run("不存在的表", func(t *testing.T) {
		view := Filter(ds, FilterOptions{SheetName: "不存在", Page: 1, Limit: 10})
		if view.TotalRows != 0 || view.TotalPages != 0 || len(view.Sheets) != 0 {
			t.Errorf("应返回空结果: %+v", view)
		}
	})
}

// TestFilterSearch 关键字不区分大小写，任一单元格命中即保留该行
func TestFilterSearch(t *testing.T) {
	ds := &model.Dataset{Sheets: []*model.Sheet{
		{
			Name:    "表1",
			Headers: []string{"标题", "期刊"},
			Rows: []map[string]string{
				{"标题": "Holistic Care Study", "期刊": "JAMA"},
				{"标题": "其他研究", "期刊": "护理学报"},
			},
			RowCount: 2,
		},
	}}

	t.Run("大小写不敏感", func(t *testing.T) {
		view := Filter(ds, FilterOptions{Search: "holistic", Page: 1, Limit: 10})
		if view.TotalRows != 1 {
			t.Errorf("totalRows = %d, want 1", view.TotalRows)
		}
	})

	t.Run("任一单元格命中", func(t *testing.T) {
		view := Filter(ds, FilterOptions{Search: "护理学报", Page: 1, Limit: 10})
		if view.TotalRows != 1 {
			t.Errorf("totalRows = %d, want 1", view.TotalRows)
		}
	})

	t.Run("无命中", func(t *testing.T) {
		view := Filter(ds, FilterOptions{Search: "不存在的关键字", Page: 1, Limit: 10})
		if view.TotalRows != 0 {
			t.Errorf("totalRows = %d, want 0", view.TotalRows)
		}
	})
}

// TestFilterColumns 列投影：各表缺失的列静默忽略；关键字只扫描保留列
func TestFilterColumns(t *testing.T) {
	ds := &model.Dataset{Sheets: []*model.Sheet{
		{
			Name:    "表1",
			Headers: []string{"标题", "期刊", "备注"},
			Rows: []map[string]string{
				{"标题": "研究A", "期刊": "JAMA", "备注": "特别标记"},
			},
			RowCount: 1,
		},
		{
			Name:    "表2",
			Headers: []string{"标题"},
			Rows: []map[string]string{
				{"标题": "研究B"},
			},
			RowCount: 1,
		},
	}}

	t.Run("投影后仅保留请求列", func(t *testing.T) {
		view := Filter(ds, FilterOptions{Columns: []string{"标题", "期刊"}, Page: 1, Limit: 10})
		if len(view.Sheets) != 2 {
			t.Fatalf("sheets = %d, want 2", len(view.Sheets))
		}
		if len(view.Sheets[0].Headers) != 2 {
			t.Errorf("表1 headers = %v, want [标题 期刊]", view.Sheets[0].Headers)
		}
		// 表2 没有期刊列，静默降为单列
		if len(view.Sheets[1].Headers) != 1 || view.Sheets[1].Headers[0] != "标题" {
			t.Errorf("表2 headers = %v, want [标题]", view.Sheets[1].Headers)
		}
		if _, ok := view.Sheets[0].Rows[0]["备注"]; ok {
			t.Error("投影后不应保留备注列")
		}
	})

	t.Run("关键字在投影之后匹配", func(t *testing.T) {
		// "特别标记"只出现在被投影掉的备注列，不应命中
		view := Filter(ds, FilterOptions{Columns: []string{"标题", "期刊"}, Search: "特别标记", Page: 1, Limit: 10})
		if view.TotalRows != 0 {
			t.Errorf("totalRows = %d, want 0", view.TotalRows)
		}
	})
}

// TestFilterPageBeyondLast 超出末页返回空片段但保留正确的统计
func TestFilterPageBeyondLast(t *testing.T) {
	ds := makeTestDataset()
	view := Filter(ds, FilterOptions{Page: 99, Limit: 4})

	if len(view.Sheets) != 0 {
		t.Errorf("sheets = %d, want 0", len(view.Sheets))
	}
	if view.TotalRows != 9 || view.TotalPages != 3 {
		t.Errorf("totalRows/totalPages = %d/%d, want 9/3", view.TotalRows, view.TotalPages)
	}
}

// TestFilterDefaults 非法页码与每页行数取默认值
func TestFilterDefaults(t *testing.T) {
	ds := makeTestDataset()
	view := Filter(ds, FilterOptions{Page: 0, Limit: 0})

	if view.Page != 1 {
		t.Errorf("page = %d, want 1", view.Page)
	}
	if view.Limit != DefaultLimit {
		t.Errorf("limit = %d, want %d", view.Limit, DefaultLimit)
	}
	if len(collectIDs(view)) != 9 {
		t.Errorf("默认分页应包含全部 9 行")
	}
}

// TestFilterDoesNotMutateSource 过滤不修改原数据集
func TestFilterDoesNotMutateSource(t *testing.T) {
	ds := makeTestDataset()
	_ = Filter(ds, FilterOptions{Search: "S2", Columns: []string{"编号"}, Page: 1, Limit: 2})

	if ds.TotalRows() != 9 {
		t.Errorf("原数据集行数被修改: %d", ds.TotalRows())
	}
	if len(ds.Sheets[0].Headers) != 2 {
		t.Errorf("原数据集列头被修改: %v", ds.Sheets[0].Headers)
	}
}
