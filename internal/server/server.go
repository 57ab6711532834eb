package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/edunsouza/meeting-workbook/internal/config"
	"github.com/edunsouza/meeting-workbook/internal/engine"
)

// Server exposes the workbook engine over HTTP and runs the weekly
// pre-fetch job.
type Server struct {
	engine   *engine.Engine
	router   *gin.Engine
	cron     *cron.Cron
	location *time.Location
	log      *zap.Logger
}

// New builds the router around the engine. loc is the engine's fixed zone,
// used to pick the pre-fetch target date.
func New(eng *engine.Engine, loc *time.Location, log *zap.Logger) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		engine:   eng,
		router:   router,
		location: loc,
		log:      log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")
	{
		api.GET("/workbook", s.currentWorkbook)
		api.GET("/workbook/:date", s.workbookAt)
	}
}

// currentWorkbook serves the default "this week" request, with the weekend
// roll-forward applied.
func (s *Server) currentWorkbook(c *gin.Context) {
	wb, err := s.engine.GetWorkbook(c.Request.Context(), nil, true)
	if err != nil {
		s.log.Error("workbook request failed", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Apostila não encontrada!"})
		return
	}
	c.JSON(http.StatusOK, wb)
}

// workbookAt serves an explicit date: the exact ISO week containing it, no
// roll-forward. This is the route the scheduled pre-fetch calls for next
// Monday.
func (s *Server) workbookAt(c *gin.Context) {
	date, err := parseDate(c.Param("date"), s.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	wb, err := s.engine.GetWorkbook(c.Request.Context(), &date, false)
	if err != nil {
		s.log.Error("workbook request failed",
			zap.Time("target", date),
			zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Apostila não encontrada!"})
		return
	}
	c.JSON(http.StatusOK, wb)
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// StartPrefetch schedules the weekly scrape of next week's program so the
// first Monday requests land on a warm cache.
func (s *Server) StartPrefetch(spec string) error {
	s.cron = cron.New(cron.WithLocation(s.location))
	if _, err := s.cron.AddFunc(spec, s.prefetchNextWeek); err != nil {
		return fmt.Errorf("scheduling prefetch: %w", err)
	}
	s.cron.Start()
	s.log.Info("prefetch scheduled", zap.String("cron", spec))
	return nil
}

func (s *Server) prefetchNextWeek() {
	target := nextMonday(time.Now().In(s.location))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.engine.GetWorkbook(ctx, &target, false); err != nil {
		s.log.Error("prefetch failed", zap.Time("target", target), zap.Error(err))
		return
	}
	s.log.Info("prefetched next week", zap.Time("target", target))
}

// nextMonday returns the first Monday strictly after now.
func nextMonday(now time.Time) time.Time {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	next := now.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), 12, 0, 0, 0, now.Location())
}

// Run serves HTTP until SIGINT/SIGTERM, then shuts the server and the
// pre-fetch scheduler down gracefully.
func (s *Server) Run(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("server listening", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case sig := <-quit:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}

	if s.cron != nil {
		s.cron.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
