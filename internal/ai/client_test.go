package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestAnalyzeNotConfigured 未配置服务地址时直接报错
func TestAnalyzeNotConfigured(t *testing.T) {
	client := NewClient("", "", "", 0)
	_, err := client.Analyze(context.Background(), "some text")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

// TestAnalyzeDecodesContract 解析分析服务返回的契约对象
func TestAnalyzeDecodesContract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"paperType": "original",
			"confidence": 0.92,
			"extractedFields": {"title": "整体照护研究", "journal": "JAMA", "doi": "10.1000/x"},
			"contentAnalysis": {"holisticCare": true, "medicalQuality": false, "medicalEducation": false, "themes": ["整体照护"]}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gpt-4o", 5*time.Second)
	analysis, err := client.Analyze(context.Background(), "论文原文")
	if err != nil {
		t.Fatalf("分析失败: %v", err)
	}

	if analysis.PaperType != "original" {
		t.Errorf("paperType = %s, want original", analysis.PaperType)
	}
	if analysis.Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", analysis.Confidence)
	}
	if analysis.ExtractedFields.Title != "整体照护研究" {
		t.Errorf("title = %s", analysis.ExtractedFields.Title)
	}
	if !analysis.ContentAnalysis.HolisticCare {
		t.Error("holisticCare 应为 true")
	}
}

// TestAnalyzeServerError 非 200 状态返回错误
func TestAnalyzeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "", 5*time.Second)
	if _, err := client.Analyze(context.Background(), "text"); err == nil {
		t.Fatal("期望返回错误")
	}
}
