package server

import (
	"context"
	"sync"
)

type snapshotSource interface {
	Version() uint64
	Snapshot() ([]byte, error)
}

type snapshotSink interface {
	Save(ctx context.Context, version uint64, payload []byte) error
}

type snapshotCounter interface {
	RecordSnapshot()
}

// snapshotter writes the store to the database whenever its version moved
// since the last successful save.
type snapshotter struct {
	source  snapshotSource
	sink    snapshotSink
	counter snapshotCounter

	mu    sync.Mutex
	saved uint64
}

func newSnapshotter(source snapshotSource, sink snapshotSink, counter snapshotCounter) *snapshotter {
	return &snapshotter{source: source, sink: sink, counter: counter, saved: source.Version()}
}

func (s *snapshotter) save(ctx context.Context) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.source.Version()
	if version == s.saved {
		return map[string]any{"version": version, "skipped": true}, nil
	}
	payload, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	if err := s.sink.Save(ctx, version, payload); err != nil {
		return nil, err
	}
	s.saved = version
	if s.counter != nil {
		s.counter.RecordSnapshot()
	}
	return map[string]any{"version": version, "bytes": len(payload)}, nil
}
