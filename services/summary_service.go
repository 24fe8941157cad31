package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"go.opentelemetry.io/otel/attribute"

	"person_search/config"
	"person_search/logger"
	"person_search/utils"
)

const hfProvider = "huggingface"

type hfRequest struct {
	Inputs string `json:"inputs"`
}

type hfSummary struct {
	SummaryText *string `json:"summary_text"`
}

// HuggingFaceSummarizer 调用Hugging Face推理接口生成摘要
type HuggingFaceSummarizer struct {
	apiToken string
	url      string
	model    string
	client   *http.Client
}

// NewHuggingFaceSummarizer 根据配置创建摘要客户端，httpClient 为空时按配置的超时时间创建
func NewHuggingFaceSummarizer(cfg *config.Config, httpClient *http.Client) *HuggingFaceSummarizer {
	if httpClient == nil {
		timeout := time.Duration(cfg.HuggingFace.TimeoutSec) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &HuggingFaceSummarizer{
		apiToken: strings.TrimSpace(cfg.HuggingFace.APIToken),
		url:      strings.TrimRight(cfg.HuggingFace.BaseURL, "/") + "/models/" + strings.Trim(cfg.HuggingFace.Model, "/"),
		model:    cfg.HuggingFace.Model,
		client:   httpClient,
	}
}

// Summarize 请求摘要。响应是列表时取第一个元素的 summary_text；
// 列表为空、响应是对象或字段缺失时 found=false；无法解析的响应返回错误
func (s *HuggingFaceSummarizer) Summarize(ctx context.Context, text string) (summary string, found bool, err error) {
	ctx, span := startSpan(ctx, "summarize",
		attribute.String("summarize.provider", hfProvider),
		attribute.String("summarize.model", s.model),
		attribute.Int("summarize.input_length", len(text)),
	)
	defer func() {
		span.SetAttributes(attribute.Bool("summarize.found", found))
		endSpan(span, err)
	}()

	if s.apiToken == "" {
		return "", false, errors.Wrap(ErrMissingAPIKey, "huggingface")
	}

	reqJSON, err := json.Marshal(hfRequest{Inputs: text})
	if err != nil {
		return "", false, errors.Wrap(err, "marshal huggingface request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(reqJSON))
	if err != nil {
		return "", false, errors.Wrap(err, "create huggingface request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiToken)

	log := logger.WithContext(ctx)
	log.Debug("发送摘要请求", "url", s.url, "model", s.model, "request_size", len(reqJSON))

	startTime := time.Now()
	resp, err := s.client.Do(req)
	requestDuration := time.Since(startTime)
	if err != nil {
		log.Error("摘要请求失败", "error", err, "duration_ms", requestDuration.Milliseconds())
		return "", false, errors.Wrap(err, "send huggingface request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, errors.Wrap(err, "read huggingface response body")
	}

	preview, _ := utils.Preview(body, logBodyLimit)
	log.Debug("摘要响应",
		"status_code", resp.StatusCode,
		"response_size", len(body),
		"body", preview,
		"duration_ms", requestDuration.Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("摘要服务返回错误状态码", "status_code", resp.StatusCode)
		return "", false, &UpstreamError{Provider: hfProvider, StatusCode: resp.StatusCode, Body: preview}
	}

	summary, found, err = parseSummary(body)
	if err != nil {
		return "", false, err
	}
	if !found {
		log.Warn("摘要响应中没有summary_text字段")
	}
	return summary, found, nil
}

func parseSummary(body []byte) (string, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return "", false, errors.Errorf("unmarshal huggingface response: invalid json")
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return "", false, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return "", false, errors.Wrap(err, "unmarshal huggingface response")
	}
	if len(items) == 0 {
		return "", false, nil
	}

	var first hfSummary
	if err := json.Unmarshal(items[0], &first); err != nil {
		// 第一个元素不是对象
		return "", false, nil
	}
	if first.SummaryText == nil || *first.SummaryText == "" {
		return "", false, nil
	}
	return *first.SummaryText, true, nil
}
