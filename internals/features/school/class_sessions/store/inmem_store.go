// internals/features/school/class_sessions/store/inmem_store.go
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/school/class_sessions/model"
)

var _ SessionStore = (*InMemoryStore)(nil)

// InMemoryStore keeps the ledger in a mutex-guarded map. It backs the
// service tests and local development without Postgres, with the same
// claim semantics as the SQL store.
type InMemoryStore struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*model.ClassSessionModel
	byKey map[string]uuid.UUID // student|course|date
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:  make(map[uuid.UUID]*model.ClassSessionModel),
		byKey: make(map[string]uuid.UUID),
	}
}

func sessionKey(s *model.ClassSessionModel) string {
	return s.ClassSessionStudentID.String() + "|" +
		s.ClassSessionCourseID.String() + "|" +
		time.Time(s.ClassSessionDate).Format("2006-01-02")
}

func (st *InMemoryStore) Insert(_ context.Context, s *model.ClassSessionModel) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	key := sessionKey(s)
	if _, exists := st.byKey[key]; exists {
		return ErrDuplicate
	}
	if s.ClassSessionID == uuid.Nil {
		s.ClassSessionID = uuid.New()
	}
	cp := *s
	st.byID[cp.ClassSessionID] = &cp
	st.byKey[key] = cp.ClassSessionID
	return nil
}

func (st *InMemoryStore) GetByID(_ context.Context, id uuid.UUID) (*model.ClassSessionModel, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (st *InMemoryStore) ClaimCheckIn(_ context.Context, id uuid.UUID, status model.SessionStatus, at time.Time) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.byID[id]
	if !ok || s.ClassSessionStatus != model.SessionStatusNotYet {
		return false, nil
	}
	s.ClassSessionStatus = status
	t := at
	s.ClassSessionCheckedInAt = &t
	s.ClassSessionUpdatedAt = time.Now()
	return true, nil
}

func (st *InMemoryStore) SetOpen(_ context.Context, id uuid.UUID, open bool) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.byID[id]
	if !ok {
		return false, nil
	}
	s.ClassSessionIsOpen = open
	s.ClassSessionUpdatedAt = time.Now()
	return true, nil
}

func (st *InMemoryStore) Override(_ context.Context, id uuid.UUID, status model.SessionStatus, note *string) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.byID[id]
	if !ok {
		return false, nil
	}
	s.ClassSessionStatus = status
	s.ClassSessionCheckedInAt = nil
	s.ClassSessionNote = note
	s.ClassSessionUpdatedAt = time.Now()
	return true, nil
}

func (st *InMemoryStore) ListByStudent(_ context.Context, studentID uuid.UUID, f ListFilter) ([]model.ClassSessionModel, int64, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	statuses := make(map[model.SessionStatus]struct{}, len(f.Statuses))
	for _, s := range f.Statuses {
		statuses[s] = struct{}{}
	}

	var rows []model.ClassSessionModel
	for _, s := range st.byID {
		if s.ClassSessionStudentID != studentID {
			continue
		}
		d := time.Time(s.ClassSessionDate)
		if f.DateFrom != nil && d.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && d.After(*f.DateTo) {
			continue
		}
		if f.OpenOnly && !s.ClassSessionIsOpen {
			continue
		}
		if f.CourseID != nil && s.ClassSessionCourseID != *f.CourseID {
			continue
		}
		if len(statuses) > 0 {
			if _, ok := statuses[s.ClassSessionStatus]; !ok {
				continue
			}
		}
		rows = append(rows, *s)
	}

	sort.Slice(rows, func(i, j int) bool {
		di := time.Time(rows[i].ClassSessionDate)
		dj := time.Time(rows[j].ClassSessionDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return rows[i].ClassSessionCourseID.String() < rows[j].ClassSessionCourseID.String()
	})

	total := int64(len(rows))
	if f.Limit > 0 {
		if f.Offset >= len(rows) {
			return nil, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(rows) {
			end = len(rows)
		}
		rows = rows[f.Offset:end]
	}
	return rows, total, nil
}

func (st *InMemoryStore) DeleteBySemester(_ context.Context, studentID uuid.UUID, semesterLabel, academicYearLabel string) (int64, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var deleted int64
	for id, s := range st.byID {
		if s.ClassSessionStudentID == studentID &&
			s.ClassSessionSemesterLabel == semesterLabel &&
			s.ClassSessionAcademicYearLabel == academicYearLabel {
			delete(st.byKey, sessionKey(s))
			delete(st.byID, id)
			deleted++
		}
	}
	return deleted, nil
}
