package repositories

import (
	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// CourseRepository keeps courses in memory in insertion order.
// It is owned by a single session and is not safe for concurrent use.
type CourseRepository struct {
	courses []models.Course
}

// NewCourseRepository creates an empty CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{}
}

// Append adds a course at the end of the list
func (r *CourseRepository) Append(course models.Course) {
	r.courses = append(r.courses, course)
}

// GetByID returns a copy of the course with the given ID
func (r *CourseRepository) GetByID(id string) (models.Course, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return r.courses[idx], nil
}

// Replace overwrites the course with the same ID, keeping its position
func (r *CourseRepository) Replace(course models.Course) error {
	idx := r.indexOf(course.ID)
	if idx < 0 {
		return apperrors.ErrCourseNotFound
	}
	r.courses[idx] = course
	return nil
}

// Delete removes the course with the given ID. It reports whether a course was removed.
func (r *CourseRepository) Delete(id string) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.courses = append(r.courses[:idx], r.courses[idx+1:]...)
	return true
}

// List returns a snapshot of all courses in insertion order
func (r *CourseRepository) List() []models.Course {
	out := make([]models.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

func (r *CourseRepository) indexOf(id string) int {
	for i, c := range r.courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}
