package services

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

// ErrMissingAPIKey 外部服务的凭证未配置
var ErrMissingAPIKey = errors.New("api credential is not configured")

// UpstreamError 外部服务返回非2xx状态码
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}
