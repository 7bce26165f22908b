// internals/features/school/class_sessions/store/store.go
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/school/class_sessions/model"
)

var (
	// ErrDuplicate signals a (student, course, date) uniqueness violation.
	// Expected during idempotent re-expansion; callers record it, never abort.
	ErrDuplicate = errors.New("duplicate session")
	// ErrNotFound signals the session row is absent.
	ErrNotFound = errors.New("session not found")
)

// ListFilter narrows ListByStudent. Zero value means "everything".
type ListFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	OpenOnly bool
	CourseID *uuid.UUID
	Statuses []model.SessionStatus

	// Offset/Limit page the result; Limit 0 disables paging.
	Offset int
	Limit  int
}

// SessionStore is the ledger's storage contract. Invariants that need
// atomicity (the check-in claim) are store operations, not read-then-write
// sequences in the services.
type SessionStore interface {
	// Insert persists one draft; ErrDuplicate on a uniqueness conflict.
	Insert(ctx context.Context, s *model.ClassSessionModel) error

	// GetByID loads one row; ErrNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSessionModel, error)

	// ClaimCheckIn atomically moves status from not_yet to the given value
	// and stamps checked-in-at. Returns false when another caller already
	// claimed the row (or it no longer exists).
	ClaimCheckIn(ctx context.Context, id uuid.UUID, status model.SessionStatus, at time.Time) (bool, error)

	// SetOpen flips the staff attendance gate. False when the row is absent.
	SetOpen(ctx context.Context, id uuid.UUID, open bool) (bool, error)

	// Override applies the administrative status (absent/excused) and note,
	// clearing any check-in timestamp. False when the row is absent.
	Override(ctx context.Context, id uuid.UUID, status model.SessionStatus, note *string) (bool, error)

	// ListByStudent returns the student's rows matching the filter, ordered
	// by date then course, plus the unpaged total.
	ListByStudent(ctx context.Context, studentID uuid.UUID, f ListFilter) ([]model.ClassSessionModel, int64, error)

	// DeleteBySemester hard-deletes one student's slice of the ledger for a
	// semester, returning the number of rows removed.
	DeleteBySemester(ctx context.Context, studentID uuid.UUID, semesterLabel, academicYearLabel string) (int64, error)
}

// CourseInfo is the display-time join supplied by the catalog collaborator.
type CourseInfo struct {
	CourseID   uuid.UUID
	CourseCode string
	CourseName string
}

// CourseResolver resolves course refs for display. A ref missing from the
// result map is a dangling FK; callers label it, never drop the rows.
type CourseResolver interface {
	Resolve(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]CourseInfo, error)
}

// StaticCourseResolver serves a fixed map; used in tests and seeding.
type StaticCourseResolver map[uuid.UUID]CourseInfo

func (r StaticCourseResolver) Resolve(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]CourseInfo, error) {
	out := make(map[uuid.UUID]CourseInfo, len(ids))
	for _, id := range ids {
		if info, ok := r[id]; ok {
			out[id] = info
		}
	}
	return out, nil
}
