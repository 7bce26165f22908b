// internals/features/school/class_sessions/store/gorm_store.go
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/class_sessions/model"
)

var (
	_ SessionStore   = (*GormStore)(nil)
	_ CourseResolver = (*GormCourseResolver)(nil)
)

// GormStore is the Postgres-backed SessionStore.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

func (st *GormStore) Insert(ctx context.Context, s *model.ClassSessionModel) error {
	if err := st.DB.WithContext(ctx).Create(s).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (st *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSessionModel, error) {
	var m model.ClassSessionModel
	err := st.DB.WithContext(ctx).First(&m, "class_session_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ClaimCheckIn is the compare-and-swap that linearizes racing check-ins:
// the WHERE clause only matches while the row is still not_yet, so exactly
// one of two concurrent claims reports RowsAffected > 0.
func (st *GormStore) ClaimCheckIn(ctx context.Context, id uuid.UUID, status model.SessionStatus, at time.Time) (bool, error) {
	res := st.DB.WithContext(ctx).
		Model(&model.ClassSessionModel{}).
		Where("class_session_id = ? AND class_session_status = ?", id, model.SessionStatusNotYet).
		Updates(map[string]interface{}{
			"class_session_status":        status,
			"class_session_checked_in_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (st *GormStore) SetOpen(ctx context.Context, id uuid.UUID, open bool) (bool, error) {
	res := st.DB.WithContext(ctx).
		Model(&model.ClassSessionModel{}).
		Where("class_session_id = ?", id).
		Update("class_session_is_open", open)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (st *GormStore) Override(ctx context.Context, id uuid.UUID, status model.SessionStatus, note *string) (bool, error) {
	res := st.DB.WithContext(ctx).
		Model(&model.ClassSessionModel{}).
		Where("class_session_id = ?", id).
		Updates(map[string]interface{}{
			"class_session_status":        status,
			"class_session_checked_in_at": gorm.Expr("NULL"),
			"class_session_note":          note,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (st *GormStore) ListByStudent(ctx context.Context, studentID uuid.UUID, f ListFilter) ([]model.ClassSessionModel, int64, error) {
	tx := st.DB.WithContext(ctx).
		Model(&model.ClassSessionModel{}).
		Where("class_session_student_id = ?", studentID)

	if f.DateFrom != nil {
		tx = tx.Where("class_session_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		tx = tx.Where("class_session_date <= ?", *f.DateTo)
	}
	if f.OpenOnly {
		tx = tx.Where("class_session_is_open")
	}
	if f.CourseID != nil {
		tx = tx.Where("class_session_course_id = ?", *f.CourseID)
	}
	if len(f.Statuses) > 0 {
		ss := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			ss = append(ss, string(s))
		}
		tx = tx.Where("class_session_status = ANY(?)", pq.Array(ss))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = tx.Order("class_session_date ASC, class_session_course_id ASC")
	if f.Limit > 0 {
		tx = tx.Offset(f.Offset).Limit(f.Limit)
	}

	var rows []model.ClassSessionModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (st *GormStore) DeleteBySemester(ctx context.Context, studentID uuid.UUID, semesterLabel, academicYearLabel string) (int64, error) {
	res := st.DB.WithContext(ctx).
		Where("class_session_student_id = ? AND class_session_semester_label = ? AND class_session_academic_year_label = ?",
			studentID, semesterLabel, academicYearLabel).
		Delete(&model.ClassSessionModel{})
	return res.RowsAffected, res.Error
}

/* =========================================================
   Course resolver (read-only join against the catalog table)
   ========================================================= */

type GormCourseResolver struct {
	DB *gorm.DB
}

func NewGormCourseResolver(db *gorm.DB) *GormCourseResolver {
	return &GormCourseResolver{DB: db}
}

type courseRow struct {
	CourseID   uuid.UUID `gorm:"column:course_id"`
	CourseCode string    `gorm:"column:course_code"`
	CourseName string    `gorm:"column:course_name"`
}

func (r *GormCourseResolver) Resolve(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]CourseInfo, error) {
	out := make(map[uuid.UUID]CourseInfo, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []courseRow
	if err := r.DB.WithContext(ctx).
		Table("courses").
		Select("course_id, course_code, course_name").
		Where("course_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.CourseID] = CourseInfo{
			CourseID:   row.CourseID,
			CourseCode: row.CourseCode,
			CourseName: row.CourseName,
		}
	}
	return out, nil
}
