package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"jobtracker_backend/internal/logger"

	"golang.org/x/time/rate"
)

const DefaultTimeout = 30 * time.Second

// Adapter оборачивает backend: ограничивает время вызова, приводит
// ошибки к ErrUnavailable/ErrTimeout/ErrRejected и логирует каждый вызов
// с привязкой к соискателю, вакансии и типу документа.
type Adapter struct {
	backend  Generator
	timeout  time.Duration
	limiters *limiterSet
}

type Option func(*Adapter)

func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithRateLimit - не более perMinute запросов в минуту на соискателя
func WithRateLimit(perMinute float64, burst int) Option {
	return func(a *Adapter) {
		if perMinute > 0 && burst > 0 {
			a.limiters = newLimiterSet(rate.Limit(perMinute/60), burst)
		}
	}
}

func NewAdapter(backend Generator, opts ...Option) *Adapter {
	a := &Adapter{
		backend: backend,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type result struct {
	text string
	err  error
}

func (a *Adapter) Generate(ctx context.Context, req Request) (string, error) {
	log := logger.FromContext(ctx).With(
		"applicant_id", req.Applicant.ID,
		"job_id", req.Job.ID,
		"kind", string(req.Kind),
	)

	if a.limiters != nil && !a.limiters.allow(req.Applicant.ID) {
		log.Warn("document generation rate limited")
		return "", ErrRateLimited
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	// Буфер на 1, чтобы горутина завершилась даже после таймаута
	done := make(chan result, 1)
	go func() {
		text, err := a.backend.Generate(callCtx, req)
		done <- result{text: text, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-callCtx.Done():
		res = result{err: callCtx.Err()}
	}

	text, err := classify(ctx, res)
	duration := time.Since(start)
	if err != nil {
		log.Warn("document generation failed", "error", err.Error(), "duration", duration)
		return "", err
	}

	log.Info("document generated", "duration", duration, "length", len(text))
	return text, nil
}

func classify(parent context.Context, res result) (string, error) {
	if res.err != nil {
		switch {
		case errors.Is(res.err, ErrRejected),
			errors.Is(res.err, ErrUnavailable),
			errors.Is(res.err, ErrTimeout),
			errors.Is(res.err, ErrRateLimited):
			return "", res.err
		case errors.Is(res.err, context.DeadlineExceeded):
			return "", ErrTimeout
		case errors.Is(res.err, context.Canceled) && parent.Err() != nil:
			// Клиент ушёл, результат никому не нужен
			return "", parent.Err()
		default:
			return "", fmt.Errorf("%w: %v", ErrUnavailable, res.err)
		}
	}

	text := strings.TrimSpace(res.text)
	if text == "" {
		return "", ErrRejected
	}
	return text, nil
}

// limiterSet - token bucket на каждого соискателя
type limiterSet struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*limiterEntry
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	limiterPruneThreshold = 10000
	limiterIdleTTL        = time.Hour
)

func newLimiterSet(limit rate.Limit, burst int) *limiterSet {
	return &limiterSet{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*limiterEntry),
	}
}

func (s *limiterSet) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	entry, ok := s.limiters[key]
	if !ok {
		if len(s.limiters) >= limiterPruneThreshold {
			s.pruneLocked(now)
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (s *limiterSet) pruneLocked(now time.Time) {
	for key, entry := range s.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(s.limiters, key)
		}
	}
}
