package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "person_search/services"

// 全局 TracerProvider 会把调用委托给之后注册的 provider，包初始化时获取即可
var tracer = otel.Tracer(tracerName)

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "person_search."+name, trace.WithAttributes(attrs...))
}

// endSpan 结束span，err 非空时标记为错误
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
