package services

import (
	"context"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"

	"person_search/logger"
	"person_search/models"
)

const (
	// SummaryFallback 摘要服务没有返回 summary_text 时使用
	SummaryFallback = "Summary not available"
	// TimestampLayout ISO-8601，精确到毫秒的UTC时间
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// PersonService 人物搜索：搜索 -> 分类 -> 摘要 -> 分区
type PersonService struct {
	search     SearchClient
	summarizer Summarizer
	now        func() time.Time
}

// NewPersonService 创建人物搜索服务
func NewPersonService(search SearchClient, summarizer Summarizer) *PersonService {
	return &PersonService{
		search:     search,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// BuildQuery 拼接 "<name> <extraDetails>" 并去掉首尾空白
func BuildQuery(name, extraDetails string) string {
	return strings.TrimSpace(name + " " + extraDetails)
}

// Search 执行一次人物搜索。没有结果时返回 success=false 的响应且不调用摘要服务；
// 任一外部调用失败时返回错误，由调用方转换为统一的错误响应
func (s *PersonService) Search(ctx context.Context, name, extraDetails string) (*models.ResponseEnvelope, error) {
	log := logger.WithContext(ctx)
	query := BuildQuery(name, extraDetails)

	log.Info("开始人物搜索", "query", query)
	results, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "search")
	}

	if len(results) == 0 {
		log.Info("没有搜索结果", "query", query)
		resp := models.NewNoResultsResponse()
		return &resp, nil
	}

	classified := Classify(results)
	log.Debug("搜索结果分类完成",
		"personal", len(classified.Personal),
		"professional", len(classified.Professional),
		"education", len(classified.Education),
		"other", len(classified.Other))

	summary, found, err := s.summarizer.Summarize(ctx, CombineResults(results))
	if err != nil {
		return nil, errors.Wrap(err, "summarize")
	}
	if !found {
		summary = SummaryFallback
	}

	resp := models.NewSuccessResponse(FormatSections(summary, classified), &models.Metadata{
		SearchQuery:  query,
		TotalSources: len(results),
		Timestamp:    s.now().UTC().Format(TimestampLayout),
	})

	log.Info("人物搜索完成", "query", query, "total_sources", len(results), "sections", len(resp.Sections))
	return &resp, nil
}

// CombineResults 按原始顺序拼接 "<title>: <snippet>"，以空行分隔
func CombineResults(results []models.SearchResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, CombineText(r))
	}
	return strings.Join(parts, "\n\n")
}
