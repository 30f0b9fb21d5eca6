package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/vickinc/eazybizy/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// now returns the current time; tests replace it to pin dates.
	now func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the service clock in UTC.
func (s *BaseService) Now() time.Time {
	if s.now != nil {
		return s.now().UTC()
	}
	return time.Now().UTC()
}

// Option configures the shared BaseService of a service.
type Option func(*BaseService)

// WithClock replaces the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		s.now = now
	}
}

func (s *BaseService) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}
