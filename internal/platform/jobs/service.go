package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	JobSnapshot = "store_snapshot"

	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"

	defaultHistory = 200
)

// Run is one recorded job execution.
type Run struct {
	ID          string          `json:"id"`
	Type        string          `json:"jobType"`
	Status      string          `json:"status"`
	Details     json.RawMessage `json:"details,omitempty"`
	Error       string          `json:"error,omitempty"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

type schedule struct {
	Type     string
	Interval time.Duration
	Run      func(context.Context) (any, error)
}

// Service runs jobs on one worker goroutine fed by a bounded queue, and keeps
// the most recent runs in memory.
type Service struct {
	queue     chan job
	schedules []schedule
	history   int
	now       func() time.Time

	mu   sync.Mutex
	runs []Run
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New() *Service {
	return &Service{
		queue:   make(chan job, 128),
		history: defaultHistory,
		now:     time.Now,
	}
}

// Every registers a periodic job. Call it before Start.
func (s *Service) Every(jobType string, interval time.Duration, run func(context.Context) (any, error)) {
	if interval <= 0 {
		return
	}
	s.schedules = append(s.schedules, schedule{Type: jobType, Interval: interval, Run: run})
}

// Start launches the worker and the tickers; all stop when ctx is done.
func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	for _, sched := range s.schedules {
		go s.tick(ctx, sched)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) bool {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
		return true
	default:
		slog.Warn("job queue full", "jobType", jobType)
		return false
	}
}

// RunNow executes the job on the caller's goroutine and records it.
func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

// Runs lists recorded runs newest first, optionally filtered by type.
func (s *Service) Runs(jobType string, limit, offset int) []Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Run, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		if jobType != "" && s.runs[i].Type != jobType {
			continue
		}
		out = append(out, s.runs[i])
	}
	if offset >= len(out) {
		return []Run{}
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) tick(ctx context.Context, sched schedule) {
	ticker := time.NewTicker(sched.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(sched.Type, sched.Run)
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	id := s.start(j.Type)

	details, err := j.Run(ctx)
	status := StatusCompleted
	errText := ""
	if err != nil {
		status = StatusFailed
		errText = err.Error()
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	s.finish(id, status, detailsJSON, errText)
	return details, err
}

func (s *Service) start(jobType string) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, Run{ID: id, Type: jobType, Status: StatusRunning, StartedAt: s.now()})
	if len(s.runs) > s.history {
		s.runs = append([]Run(nil), s.runs[len(s.runs)-s.history:]...)
	}
	return id
}

func (s *Service) finish(id, status string, details json.RawMessage, errText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.runs) - 1; i >= 0; i-- {
		if s.runs[i].ID != id {
			continue
		}
		done := s.now()
		s.runs[i].Status = status
		s.runs[i].Details = details
		s.runs[i].Error = errText
		s.runs[i].CompletedAt = &done
		return
	}
}
