// internals/features/school/class_sessions/service/checkin.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/apperr"
	"campushub_backend/internals/features/school/class_sessions/model"
	"campushub_backend/internals/features/school/class_sessions/store"
)

// DefaultGraceMinutes is the on-time window after the scheduled start.
const DefaultGraceMinutes = 15

// CheckInService runs the attendance state machine for a single session.
type CheckInService struct {
	Store store.SessionStore
	// GraceMinutes overrides the default window; <=0 keeps the default.
	GraceMinutes int
}

func NewCheckInService(st store.SessionStore, graceMinutes int) *CheckInService {
	return &CheckInService{Store: st, GraceMinutes: graceMinutes}
}

func (s *CheckInService) grace() time.Duration {
	m := s.GraceMinutes
	if m <= 0 {
		m = DefaultGraceMinutes
	}
	return time.Duration(m) * time.Minute
}

// CheckIn validates the preconditions in order (existence/ownership, staff
// gate, unclaimed status), classifies the new status against the grace
// window and claims the row atomically. The session's end time never closes
// the window; only the staff gate does.
func (s *CheckInService) CheckIn(ctx context.Context, sessionID, studentID uuid.UUID, now time.Time) (model.SessionStatus, error) {
	sess, err := s.Store.GetByID(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return "", apperr.NotFound("session not found")
	}
	if err != nil {
		return "", apperr.Internal(err)
	}
	if sess.ClassSessionStudentID != studentID {
		return "", apperr.Forbidden("session does not belong to caller")
	}
	if !sess.ClassSessionIsOpen {
		return "", apperr.NotOpen("attendance is not open for this session")
	}
	if sess.ClassSessionStatus.Recorded() {
		return "", apperr.AlreadyRecorded("attendance already recorded")
	}

	startsAt, err := sess.StartsAt()
	if err != nil {
		return "", apperr.Wrap(apperr.KindValidation, "session has a malformed start time", err)
	}

	// <= grace is on time; the boundary minute itself still counts.
	status := model.SessionStatusPresent
	if now.Sub(startsAt) > s.grace() {
		status = model.SessionStatusLate
	}

	claimed, err := s.Store.ClaimCheckIn(ctx, sessionID, status, now)
	if err != nil {
		return "", apperr.Internal(err)
	}
	if !claimed {
		// Lost the race between the status read above and the claim.
		return "", apperr.AlreadyRecorded("attendance already recorded")
	}
	return status, nil
}
