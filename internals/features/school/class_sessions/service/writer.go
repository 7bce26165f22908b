// internals/features/school/class_sessions/service/writer.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"campushub_backend/internals/apperr"
	"campushub_backend/internals/features/school/class_sessions/model"
	"campushub_backend/internals/features/school/class_sessions/store"
)

const defaultWriteConcurrency = 8

// WrittenSession identifies one persisted draft; start time rides along for
// later check-in window comparisons.
type WrittenSession struct {
	Index     int       `json:"index"`
	SessionID uuid.UUID `json:"session_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
}

// WriteFailure reports exactly which input index failed and why.
type WriteFailure struct {
	Index  int         `json:"index"`
	Kind   apperr.Kind `json:"kind"`
	Reason string      `json:"reason"`
}

type BatchResult struct {
	Succeeded []WrittenSession `json:"succeeded"`
	Failed    []WriteFailure   `json:"failed"`
}

// LedgerWriter persists expansion drafts: each write is independent, the
// fan-out is bounded, and a duplicate key is an expected outcome during
// re-runs, recorded per index instead of aborting the batch.
type LedgerWriter struct {
	Store       store.SessionStore
	Concurrency int
}

func NewLedgerWriter(st store.SessionStore) *LedgerWriter {
	return &LedgerWriter{Store: st, Concurrency: defaultWriteConcurrency}
}

func (w *LedgerWriter) WriteBatch(ctx context.Context, drafts []model.ClassSessionModel) *BatchResult {
	limit := w.Concurrency
	if limit <= 0 {
		limit = defaultWriteConcurrency
	}

	outcomes := make([]error, len(drafts))
	written := make([]model.ClassSessionModel, len(drafts))

	var g errgroup.Group
	g.SetLimit(limit)
	for i := range drafts {
		i := i
		g.Go(func() error {
			draft := drafts[i]
			if draft.ClassSessionID == uuid.Nil {
				draft.ClassSessionID = uuid.New()
			}
			outcomes[i] = w.Store.Insert(ctx, &draft)
			written[i] = draft
			return nil // per-draft errors are collected, never cancel siblings
		})
	}
	_ = g.Wait()

	res := &BatchResult{}
	for i, err := range outcomes {
		switch {
		case err == nil:
			res.Succeeded = append(res.Succeeded, WrittenSession{
				Index:     i,
				SessionID: written[i].ClassSessionID,
				Date:      time.Time(written[i].ClassSessionDate).Format("2006-01-02"),
				StartTime: written[i].ClassSessionStartTime,
			})
		case errors.Is(err, store.ErrDuplicate):
			res.Failed = append(res.Failed, WriteFailure{
				Index:  i,
				Kind:   apperr.KindConflict,
				Reason: "session already exists for this student, course and date",
			})
		default:
			res.Failed = append(res.Failed, WriteFailure{
				Index:  i,
				Kind:   apperr.KindInternal,
				Reason: err.Error(),
			})
		}
	}
	return res
}
