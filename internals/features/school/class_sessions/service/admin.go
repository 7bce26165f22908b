// internals/features/school/class_sessions/service/admin.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"campushub_backend/internals/apperr"
	"campushub_backend/internals/features/school/class_sessions/model"
	"campushub_backend/internals/features/school/class_sessions/store"
)

// AdminService hosts the staff-only ledger mutations: the attendance gate,
// the status override, and the semester reset that precedes a re-expansion.
type AdminService struct {
	Store store.SessionStore
}

func NewAdminService(st store.SessionStore) *AdminService {
	return &AdminService{Store: st}
}

func (s *AdminService) SetAttendanceOpen(ctx context.Context, sessionID uuid.UUID, open bool) error {
	ok, err := s.Store.SetOpen(ctx, sessionID, open)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("session not found")
	}
	return nil
}

// Override records an administrative absent/excused decision. It clears the
// check-in timestamp so the timestamp-iff-present-or-late invariant holds.
func (s *AdminService) Override(ctx context.Context, sessionID uuid.UUID, status model.SessionStatus, note *string) error {
	switch status {
	case model.SessionStatusAbsent, model.SessionStatusExcused:
	default:
		return apperr.Validation("override status must be absent or excused")
	}

	ok, err := s.Store.Override(ctx, sessionID, status, note)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("session not found")
	}
	return nil
}

// ResetSemester clears one student's ledger slice for a semester. Required
// before re-running an expansion whose templates changed, so stale rows do
// not shadow the uniqueness key.
func (s *AdminService) ResetSemester(ctx context.Context, studentID uuid.UUID, semesterLabel, academicYearLabel string) (int64, error) {
	semesterLabel = strings.TrimSpace(semesterLabel)
	academicYearLabel = strings.TrimSpace(academicYearLabel)
	if semesterLabel == "" || academicYearLabel == "" {
		return 0, apperr.Validation("semester and academic year labels are required")
	}

	deleted, err := s.Store.DeleteBySemester(ctx, studentID, semesterLabel, academicYearLabel)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return deleted, nil
}
