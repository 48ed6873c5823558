package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger проверка доступности зависимости
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer отдаёт liveness и readiness пробы
type HealthServer struct {
	server *http.Server
	logger *zap.Logger
}

// NewHealthServer собирает gin-роутер с /healthz и /readyz
func NewHealthServer(addr string, db Pinger, production bool, logger *zap.Logger) *HealthServer {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	return &HealthServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           newHealthRouter(db),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func newHealthRouter(db Pinger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return router
}

// Run слушает addr до отмены ctx, затем плавно останавливается
func (h *HealthServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("Health server listening", zap.String("addr", h.server.Addr))
		errCh <- h.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	h.logger.Info("Health server stopped")
	return nil
}
