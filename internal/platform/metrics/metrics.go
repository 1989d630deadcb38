package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests    atomic.Uint64
	clientErrors     atomic.Uint64
	serverErrors     atomic.Uint64
	rateLimited      atomic.Uint64
	totalDurationMs  atomic.Uint64
	assistantCalls   atomic.Uint64
	assistantErrors  atomic.Uint64
	payslipsCreated  atomic.Uint64
	snapshotsWritten atomic.Uint64
}

type Snapshot struct {
	RequestsTotal    uint64  `json:"requestsTotal"`
	ClientErrors     uint64  `json:"clientErrorsTotal"`
	ServerErrors     uint64  `json:"errorsTotal"`
	RateLimited      uint64  `json:"rateLimitedTotal"`
	AvgDurationMs    float64 `json:"avgDurationMs"`
	TotalDurationMs  uint64  `json:"totalDurationMs"`
	AssistantCalls   uint64  `json:"assistantCallsTotal"`
	AssistantErrors  uint64  `json:"assistantErrorsTotal"`
	PayslipsCreated  uint64  `json:"payslipsCreatedTotal"`
	SnapshotsWritten uint64  `json:"snapshotsWrittenTotal"`
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status == 429:
		c.rateLimited.Add(1)
		c.clientErrors.Add(1)
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

func (c *Collector) RecordAssistant(err error) {
	c.assistantCalls.Add(1)
	if err != nil {
		c.assistantErrors.Add(1)
	}
}

func (c *Collector) RecordPayslips(created int) {
	if created > 0 {
		c.payslipsCreated.Add(uint64(created))
	}
}

func (c *Collector) RecordSnapshot() {
	c.snapshotsWritten.Add(1)
}

func (c *Collector) Snapshot() Snapshot {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return Snapshot{
		RequestsTotal:    total,
		ClientErrors:     c.clientErrors.Load(),
		ServerErrors:     c.serverErrors.Load(),
		RateLimited:      c.rateLimited.Load(),
		AvgDurationMs:    avg,
		TotalDurationMs:  totalMs,
		AssistantCalls:   c.assistantCalls.Load(),
		AssistantErrors:  c.assistantErrors.Load(),
		PayslipsCreated:  c.payslipsCreated.Load(),
		SnapshotsWritten: c.snapshotsWritten.Load(),
	}
}
