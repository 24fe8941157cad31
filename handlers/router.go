package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"person_search/config"
	_ "person_search/docs" // 导入 swagger 文档
)

// NewRouter 创建路由并挂载中间件
func NewRouter(cfg *config.Config, service PersonSearcher) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	RegisterRoutes(r, cfg, service)
	return r
}

// RegisterRoutes 注册 swagger、健康检查和人物搜索路由
func RegisterRoutes(r chi.Router, cfg *config.Config, service PersonSearcher) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/health", HealthHandler)

	h := NewPersonHandler(cfg, service)
	r.Post("/search-person", h.SearchPerson)
}
