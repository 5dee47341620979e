// Package revalidate tells the rendering front end that a cached view is
// stale. Delivery is asynchronous so a mutation never waits on it.
package revalidate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/pkg/clients"
)

//go:generate mockgen -source=revalidate.go -destination=mock_revalidate.go -package=revalidate

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	workers       = 4
)

type Notifier interface {
	Invalidate(ctx context.Context, path string) error
}

type request struct {
	Path string `json:"path"`
}

type Service struct {
	ctx           context.Context
	url           string
	client        clients.HTTPClientI
	workerPool    WorkerPoolI
	pending       sync.Map
	retryInterval time.Duration
}

// New builds the notifier. Background deliveries stop when ctx is done.
// An empty url turns invalidation into a log line.
func New(ctx context.Context, url string, client clients.HTTPClientI) *Service {
	return &Service{
		ctx:           ctx,
		url:           url,
		client:        client,
		workerPool:    NewWorkerPool(ctx, workers),
		retryInterval: retryInterval,
	}
}

// Invalidate queues a notification for path. A path still waiting in the
// queue is not queued twice; once its delivery has started it can be queued
// again.
func (s *Service) Invalidate(ctx context.Context, path string) error {
	if s.url == "" {
		zap.L().Debug("view invalidated", zap.String("path", path))
		return nil
	}

	if _, loaded := s.pending.LoadOrStore(path, struct{}{}); loaded {
		return nil
	}

	err := s.workerPool.AddTask(ctx, func() error {
		// Changes committed from here on need a delivery of their own.
		s.pending.Delete(path)
		return s.deliver(s.ctx, path)
	})
	if err != nil {
		s.pending.Delete(path)
		return fmt.Errorf("can't queue invalidation of %s: %w", path, err)
	}
	return nil
}

// Wait blocks until the worker pool has stopped.
func (s *Service) Wait() {
	s.workerPool.Wait()
}

func (s *Service) deliver(ctx context.Context, path string) error {
	body, err := json.Marshal(request{Path: path})
	if err != nil {
		return err
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, respHeaders, err := s.client.Post(ctx, s.url, headers, body)
		wait := s.retryInterval * time.Duration(attempt)

		switch {
		case err != nil:
			zap.L().Warn("Revalidation request failed", zap.String("path", path), zap.Int("attempt", attempt), zap.Error(err))
		case statusCode >= 200 && statusCode < 300:
			zap.L().Info("View revalidated", zap.String("path", path))
			return nil
		case statusCode == http.StatusTooManyRequests:
			wait = retryAfter(respHeaders, wait)
			zap.L().Warn("Rate limit detected, retrying", zap.String("path", path), zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
		case statusCode >= 500:
			zap.L().Warn("Revalidation endpoint error, retrying", zap.String("path", path), zap.Int("status", statusCode), zap.Int("attempt", attempt))
		default:
			return fmt.Errorf("revalidation of %s rejected with status %d", path, statusCode)
		}

		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("failed to revalidate %s after %d retries", path, maxRetries)
}

func retryAfter(headers http.Header, fallback time.Duration) time.Duration {
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
