package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestStartSpanConcurrent(t *testing.T) {
	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			ctx, span := startSpan(context.Background(), "search", attribute.Int("worker", i))
			require.NotNil(t, ctx)
			require.NotNil(t, span)

			var err error
			if i%2 == 0 {
				err = errors.Errorf("worker %d failed", i)
			}
			endSpan(span, err)
		}(i)
	}
	wg.Wait()
}
