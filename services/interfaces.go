package services

import (
	"context"

	"person_search/models"
)

// SearchClient 搜索服务接口
type SearchClient interface {
	// 执行搜索并返回自然结果，字段缺失时返回空列表
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Summarizer 摘要服务接口
type Summarizer interface {
	// 对文本生成摘要，响应中没有摘要字段时返回 found=false
	Summarize(ctx context.Context, text string) (summary string, found bool, err error)
}
