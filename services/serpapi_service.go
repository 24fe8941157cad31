package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"go.opentelemetry.io/otel/attribute"

	"person_search/config"
	"person_search/logger"
	"person_search/models"
	"person_search/utils"
)

const (
	serpProvider = "serpapi"
	// logBodyLimit 日志中记录的响应体最大字节数
	logBodyLimit = 4096
)

type serpResponse struct {
	OrganicResults []models.SearchResult `json:"organic_results"`
	Error          string                `json:"error"`
}

// SerpAPIClient 通过SerpAPI查询Google自然结果
type SerpAPIClient struct {
	apiKey   string
	endpoint string
	engine   string
	client   *http.Client
}

// NewSerpAPIClient 根据配置创建SerpAPI客户端，httpClient 为空时按配置的超时时间创建
func NewSerpAPIClient(cfg *config.Config, httpClient *http.Client) *SerpAPIClient {
	if httpClient == nil {
		// 使用配置的超时时间
		timeout := time.Duration(cfg.SerpAPI.TimeoutSec) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second // 默认超时
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &SerpAPIClient{
		apiKey:   strings.TrimSpace(cfg.SerpAPI.APIKey),
		endpoint: cfg.SerpAPI.Endpoint,
		engine:   cfg.SerpAPI.Engine,
		client:   httpClient,
	}
}

// Search 调用SerpAPI，organic_results 缺失时返回空列表
func (c *SerpAPIClient) Search(ctx context.Context, query string) (results []models.SearchResult, err error) {
	ctx, span := startSpan(ctx, "search",
		attribute.String("search.provider", serpProvider),
		attribute.Int("search.query_length", len(query)),
	)
	defer func() {
		span.SetAttributes(attribute.Int("search.result_count", len(results)))
		endSpan(span, err)
	}()

	if c.apiKey == "" {
		return nil, errors.Wrap(ErrMissingAPIKey, "serpapi")
	}

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid serpapi endpoint %q", c.endpoint)
	}

	params := endpoint.Query()
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	if c.engine != "" {
		params.Set("engine", c.engine)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create serpapi request")
	}
	req.Header.Set("Accept", "application/json")

	log := logger.WithContext(ctx)
	log.Debug("发送SerpAPI请求", "endpoint", c.endpoint, "query", query)

	startTime := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Error("SerpAPI请求失败", "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return nil, errors.Wrap(err, "send serpapi request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read serpapi response body")
	}

	preview, truncated := utils.Preview(body, logBodyLimit)
	log.Debug("SerpAPI响应",
		"status_code", resp.StatusCode,
		"response_size", len(body),
		"body", preview,
		"body_truncated", truncated,
		"duration_ms", time.Since(startTime).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("SerpAPI返回错误状态码", "status_code", resp.StatusCode)
		return nil, &UpstreamError{Provider: serpProvider, StatusCode: resp.StatusCode, Body: preview}
	}

	var payload serpResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "unmarshal serpapi response")
	}

	// SerpAPI 无结果时也会通过 error 字段说明，按空列表处理
	if payload.Error != "" {
		log.Warn("SerpAPI返回错误信息", "error", payload.Error)
	}

	results = payload.OrganicResults
	if results == nil {
		results = []models.SearchResult{}
	}

	log.Info("SerpAPI搜索完成", "result_count", len(results))
	return results, nil
}
