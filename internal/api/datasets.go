package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"paperreward/internal/service/dataset"
)

// UploadDataset 上传并解析表格数据集
// POST /api/datasets  (multipart, 字段名 file)
func (h *Handler) UploadDataset(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取文件失败"})
		return
	}
	defer file.Close()

	ds, err := dataset.Parse(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "文件解析失败，请确认为有效的表格文件"})
		return
	}

	id := uuid.New().String()
	h.datasets.put(id, fileHeader.Filename, ds)

	// 返回各表概要，行数据通过查询接口按页获取
	sheets := make([]gin.H, 0, len(ds.Sheets))
	for _, s := range ds.Sheets {
		sheets = append(sheets, gin.H{
			"name":     s.Name,
			"headers":  s.Headers,
			"rowCount": s.RowCount,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        id,
		"fileName":  fileHeader.Filename,
		"sheets":    sheets,
		"totalRows": ds.TotalRows(),
	})
}

// QueryDataset 查询数据集
// GET /api/datasets/:id/query?search=&sheet=&columns=a,b&page=1&limit=50
func (h *Handler) QueryDataset(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	cached, ok := h.datasets.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "数据集不存在或已过期"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	view := dataset.Filter(cached.dataset, dataset.FilterOptions{
		Search:    c.Query("search"),
		SheetName: c.Query("sheet"),
		Columns:   parseColumnsParam(c.Query("columns")),
		Page:      page,
		Limit:     limit,
	})

	c.JSON(http.StatusOK, view)
}

// GetDatasetFullText 获取数据集全文渲染（供下游全文消费）
// GET /api/datasets/:id/fulltext
func (h *Handler) GetDatasetFullText(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	cached, ok := h.datasets.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "数据集不存在或已过期"})
		return
	}

	c.Header("X-Dataset-File", cached.fileName)
	c.String(http.StatusOK, cached.dataset.FullTextIndex)
}

// parseColumnsParam 解析逗号分隔的列名参数，忽略空项
func parseColumnsParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			columns = append(columns, p)
		}
	}
	return columns
}
