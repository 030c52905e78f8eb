package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/api"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/api/handler"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/api/middleware"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/application"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/config"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/infrastructure/memory"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/pkg/metrics"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/worker"
)

func main() {
	cfg := config.Load()
	defer logger.Sync()

	m := metrics.Init()

	// インメモリストア初期化（起動ごとに初期データへ戻る）
	movieRepo := memory.NewCatalogRepository(memory.SeedMovies())
	store := memory.NewAvailabilityStore(memory.SeedBookedSeats())

	// サービス初期化
	catalogService := application.NewCatalogService(movieRepo)
	bookingService := application.NewBookingService(movieRepo, store, m)
	paymentService := application.NewPaymentService(
		bookingService,
		cfg.Payment.TickInterval,
		cfg.Payment.ProgressStep,
		m,
	)
	// リーパーが決済中のセッションを巻き込まないよう試行レジストリを注入
	bookingService.SetAttemptRegistry(paymentService)

	// ハンドラー初期化
	movieHandler := handler.NewMovieHandler(catalogService, bookingService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	healthHandler := handler.NewHealthHandler()

	// Echo セットアップ
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupMiddleware(e)
	e.Use(middleware.PrometheusMiddleware(m))

	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), middleware.MetricsBasicAuth())

	v1 := e.Group("/api/v1")
	v1.GET("/movies", movieHandler.List)
	v1.GET("/movies/:id", movieHandler.GetByID)
	v1.GET("/movies/:id/seats", movieHandler.SeatMap)

	v1.POST("/sessions", bookingHandler.Start)
	v1.GET("/sessions/:id", bookingHandler.GetByID)
	v1.DELETE("/sessions/:id", bookingHandler.Abandon)
	v1.POST("/sessions/:id/seats", bookingHandler.ToggleSeat)
	v1.POST("/sessions/:id/checkout", bookingHandler.Checkout)

	v1.POST("/sessions/:id/payment", paymentHandler.Start)
	v1.GET("/sessions/:id/payment", paymentHandler.Progress)
	v1.DELETE("/sessions/:id/payment", paymentHandler.Cancel)

	// 放置セッション回収ワーカー
	reaper := worker.NewSessionReaper(bookingService, cfg.Session.ReaperInterval, cfg.Session.IdleTTL)
	reaperCtx, cancelReaper := context.WithCancel(context.Background())
	go reaper.Start(reaperCtx)

	// サーバー起動
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("サーバー起動", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	cancelReaper()
	reaper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
