// internals/features/school/class_sessions/service/summary.go
package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"campushub_backend/internals/apperr"
	"campushub_backend/internals/features/school/class_sessions/model"
	"campushub_backend/internals/features/school/class_sessions/store"
)

// UnknownCourseLabel marks rows whose course ref no longer resolves. They
// stay in the totals; dropping them would corrupt the invariant.
const UnknownCourseLabel = "unknown course"

type CourseSummary struct {
	CourseID      uuid.UUID `json:"course_id"`
	CourseCode    string    `json:"course_code,omitempty"`
	CourseName    string    `json:"course_name"`
	TotalSessions int       `json:"total_sessions"`
	PresentCount  int       `json:"present_count"`
	LateCount     int       `json:"late_count"`
	AbsentCount   int       `json:"absent_count"`
	ExcusedCount  int       `json:"excused_count"`
	NotYetCount   int       `json:"not_yet_count"`
}

type SemesterSummary struct {
	SemesterTitle     string          `json:"semester_title"` // "Semester 1 (2024-2025)"
	SemesterLabel     string          `json:"semester_label"`
	AcademicYearLabel string          `json:"academic_year_label"`
	Courses           []CourseSummary `json:"courses"`
}

// semesterRank fixes the in-year ordering; unrecognized labels sort last.
var semesterRank = map[string]int{
	"Semester 1":      0,
	"Tet Semester":    1,
	"Semester 2":      2,
	"Summer Semester": 3,
}

func rankOf(label string) int {
	if r, ok := semesterRank[label]; ok {
		return r
	}
	return len(semesterRank)
}

// BuildSummaries is the storage-agnostic group-then-reduce: rows in,
// ordered semester summaries out. Each row bumps exactly one status bucket
// and the shared total of the same accumulator, so
// total = present+late+absent+excused+notYet holds by construction.
func BuildSummaries(rows []model.ClassSessionModel, courses map[uuid.UUID]store.CourseInfo) []SemesterSummary {
	type semKey struct{ year, semester string }
	type courseKey struct {
		sem    semKey
		course uuid.UUID
	}

	acc := make(map[courseKey]*CourseSummary)
	order := make([]courseKey, 0)

	for i := range rows {
		row := &rows[i]
		key := courseKey{
			sem:    semKey{row.ClassSessionAcademicYearLabel, row.ClassSessionSemesterLabel},
			course: row.ClassSessionCourseID,
		}
		cs, ok := acc[key]
		if !ok {
			cs = &CourseSummary{CourseID: row.ClassSessionCourseID}
			if info, found := courses[row.ClassSessionCourseID]; found {
				cs.CourseCode = info.CourseCode
				cs.CourseName = info.CourseName
			} else {
				cs.CourseName = UnknownCourseLabel
			}
			acc[key] = cs
			order = append(order, key)
		}

		cs.TotalSessions++
		switch row.ClassSessionStatus {
		case model.SessionStatusPresent:
			cs.PresentCount++
		case model.SessionStatusLate:
			cs.LateCount++
		case model.SessionStatusAbsent:
			cs.AbsentCount++
		case model.SessionStatusExcused:
			cs.ExcusedCount++
		case model.SessionStatusNotYet:
			cs.NotYetCount++
		default:
			// unrecognized stored value still counts somewhere
			cs.NotYetCount++
		}
	}

	bySem := make(map[semKey]*SemesterSummary)
	semOrder := make([]semKey, 0)
	for _, key := range order {
		sem, ok := bySem[key.sem]
		if !ok {
			sem = &SemesterSummary{
				SemesterTitle:     fmt.Sprintf("%s (%s)", key.sem.semester, key.sem.year),
				SemesterLabel:     key.sem.semester,
				AcademicYearLabel: key.sem.year,
			}
			bySem[key.sem] = sem
			semOrder = append(semOrder, key.sem)
		}
		sem.Courses = append(sem.Courses, *acc[key])
	}

	out := make([]SemesterSummary, 0, len(semOrder))
	for _, k := range semOrder {
		sem := bySem[k]
		sort.Slice(sem.Courses, func(i, j int) bool {
			if sem.Courses[i].CourseName != sem.Courses[j].CourseName {
				return sem.Courses[i].CourseName < sem.Courses[j].CourseName
			}
			return sem.Courses[i].CourseID.String() < sem.Courses[j].CourseID.String()
		})
		out = append(out, *sem)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AcademicYearLabel != out[j].AcademicYearLabel {
			return out[i].AcademicYearLabel > out[j].AcademicYearLabel // newest first
		}
		ri, rj := rankOf(out[i].SemesterLabel), rankOf(out[j].SemesterLabel)
		if ri != rj {
			return ri < rj
		}
		return out[i].SemesterLabel < out[j].SemesterLabel
	})
	return out
}

// SummaryService is the read side: never persisted, always recomputed.
type SummaryService struct {
	Store   store.SessionStore
	Courses store.CourseResolver
}

func NewSummaryService(st store.SessionStore, courses store.CourseResolver) *SummaryService {
	return &SummaryService{Store: st, Courses: courses}
}

func (s *SummaryService) Summarize(ctx context.Context, studentID uuid.UUID) ([]SemesterSummary, error) {
	rows, _, err := s.Store.ListByStudent(ctx, studentID, store.ListFilter{})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	courses := map[uuid.UUID]store.CourseInfo{}
	if s.Courses != nil && len(rows) > 0 {
		seen := make(map[uuid.UUID]struct{})
		ids := make([]uuid.UUID, 0)
		for i := range rows {
			id := rows[i].ClassSessionCourseID
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		courses, err = s.Courses.Resolve(ctx, ids)
		if err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return BuildSummaries(rows, courses), nil
}

// ListDetails is the drill-down into one course's sessions, optionally
// narrowed to a status set.
func (s *SummaryService) ListDetails(ctx context.Context, studentID, courseID uuid.UUID, statuses []model.SessionStatus) ([]model.ClassSessionModel, error) {
	for _, st := range statuses {
		if !st.Valid() {
			return nil, apperr.Validation(fmt.Sprintf("unknown status %q", st))
		}
	}
	rows, _, err := s.Store.ListByStudent(ctx, studentID, store.ListFilter{
		CourseID: &courseID,
		Statuses: statuses,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return rows, nil
}
