package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/spf13/cobra"
	_ "github.com/swaggo/swag" // 导入 swag
	"golang.org/x/sync/errgroup"

	"person_search/config"
	"person_search/handlers"
	"person_search/logger"
	"person_search/services"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "person_search",
	Short:        "人物搜索与摘要服务",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), config.Load(configPath))
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "配置文件路径")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		return errors.Wrap(err, "init logger")
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	if cfg.SerpAPI.APIKey == "" {
		logger.Warn("SERPAPI_KEY未设置，搜索请求将失败")
	}
	if cfg.HuggingFace.APIToken == "" {
		logger.Warn("HF_API_TOKEN未设置，摘要请求将失败")
	}

	svc := services.NewPersonService(
		services.NewSerpAPIClient(cfg, nil),
		services.NewHuggingFaceSummarizer(cfg, nil),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.NewRouter(cfg, svc),
		ReadTimeout:  secondsOr(cfg.Server.ReadTimeoutSec, 15),
		WriteTimeout: secondsOr(cfg.Server.WriteTimeoutSec, 90),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("服务器启动", "address", cfg.Server.Addr, "env", cfg.Runtime.Env)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen and serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("服务器关闭中")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), secondsOr(cfg.Server.ShutdownTimeoutSec, 10))
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func secondsOr(sec, def int) time.Duration {
	if sec <= 0 {
		sec = def
	}
	return time.Duration(sec) * time.Second
}
