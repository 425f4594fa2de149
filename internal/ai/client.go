package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"paperreward/internal/model"
)

// ErrNotConfigured AI 服务未配置
var ErrNotConfigured = errors.New("ai service not configured")

// Analyzer 论文文本分析服务（外部 LLM 服务契约，本系统只消费结构化结果）
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*model.PaperAnalysis, error)
}

// Client 基于 HTTP 的分析服务客户端
type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

// NewClient 创建分析服务客户端
// endpoint 为空时客户端可创建但调用返回 ErrNotConfigured
func NewClient(endpoint, apiKey, modelName string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    modelName,
		http:     &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Model string `json:"model,omitempty"`
	Text  string `json:"text"`
}

// Analyze 提交原文并取回结构化分析结果
func (c *Client) Analyze(ctx context.Context, text string) (*model.PaperAnalysis, error) {
	if c.endpoint == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(analyzeRequest{Model: c.model, Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyze request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyze request failed: status %d", resp.StatusCode)
	}

	var analysis model.PaperAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}

	return &analysis, nil
}
