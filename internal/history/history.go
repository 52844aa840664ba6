// Package history persists a one-row summary of each device scan to a local
// SQLite database so that battery, storage, and score trends can be inspected
// across runs. Recording is best-effort: a history failure never fails a scan.
package history

import (
	"context"

	"codeberg.org/mutker/droidpulse/internal/errors"
	"codeberg.org/mutker/droidpulse/internal/logger"
)

type service struct {
	repo Repository
}

// NewService creates a scan history recorder. When history is disabled in the
// configuration a no-op recorder is returned, so callers never branch on it.
func NewService(cfg Config) (Recorder, error) {
	errFactory := errors.New()

	if !cfg.Enabled {
		return &noopRecorder{}, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	repo, err := NewRepository(cfg)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, scan *ScanRecord) error {
	errFactory := errors.New()

	if scan == nil {
		return errFactory.New(ErrInvalidScan)
	}
	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(ErrRecordFailed, err)
	}

	if err := s.repo.Record(scan); err != nil {
		return err
	}

	logger.Debug().
		Str("device", scan.DeviceSerial).
		Int("health_score", scan.HealthScore).
		Str("source", scan.AnalysisSource).
		Msg("Scan recorded")

	return nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]ScanRecord, error) {
	errFactory := errors.New()

	if err := ctx.Err(); err != nil {
		return nil, errFactory.Wrap(ErrQueryFailed, err)
	}
	if limit <= 0 {
		limit = 1
	}

	return s.repo.Recent(limit)
}

func (s *service) Close() error {
	return s.repo.Close()
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *ScanRecord) error         { return nil }
func (noopRecorder) Recent(context.Context, int) ([]ScanRecord, error) { return nil, nil }
func (noopRecorder) Close() error                                      { return nil }
