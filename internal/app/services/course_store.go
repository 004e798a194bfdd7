package services

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/app/repositories"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/validation"
)

// EditMode is the state of the course form
type EditMode int

const (
	// ModeIdle means the next submission adds a new course
	ModeIdle EditMode = iota
	// ModeEditing means the next submission updates the course in the edit slot
	ModeEditing
)

// String returns the mode name
func (m EditMode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "idle"
}

// CourseStore defines the operations on a session's course list.
// Operations run to completion and are not safe for concurrent use.
type CourseStore interface {
	Add(in models.CourseInput) (models.Course, error)
	BeginEdit(id string) (models.Course, error)
	Update(in models.CourseInput) (models.Course, error)
	Remove(id string) ([]models.Course, error)
	CancelEdit()
	Find(id string) (models.Course, error)
	List() []models.Course
	Mode() EditMode
	EditingID() (string, bool)
}

// IDGenerator returns a new course identifier. It must never repeat within a session.
type IDGenerator func() string

// courseStoreImpl implements the CourseStore interface
type courseStoreImpl struct {
	repo      *repositories.CourseRepository
	newID     IDGenerator
	editingID string
	logger    zerolog.Logger
}

// NewCourseStore creates a course store with random UUID identifiers
func NewCourseStore(repo *repositories.CourseRepository, logger zerolog.Logger) CourseStore {
	return NewCourseStoreWithIDs(repo, logger, uuid.NewString)
}

// NewCourseStoreWithIDs creates a course store with a custom identifier source
func NewCourseStoreWithIDs(repo *repositories.CourseRepository, logger zerolog.Logger, newID IDGenerator) CourseStore {
	return &courseStoreImpl{
		repo:   repo,
		newID:  newID,
		logger: logger,
	}
}

// Add validates the input and appends a new course
func (s *courseStoreImpl) Add(in models.CourseInput) (models.Course, error) {
	fields, err := validation.ValidateCourse(in)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Rejected course input on add")
		return models.Course{}, err
	}

	course := models.Course{
		ID:      s.newID(),
		Name:    fields.Name,
		Credits: fields.Credits,
		Score:   fields.Score,
	}
	s.repo.Append(course)

	s.logger.Debug().Str("courseID", course.ID).Str("name", course.Name).Msg("Course added")
	return course, nil
}

// BeginEdit puts the course with the given ID in the edit slot and returns a copy of it.
// Calling it while another course is being edited moves the slot to the new course.
func (s *courseStoreImpl) BeginEdit(id string) (models.Course, error) {
	course, err := s.repo.GetByID(id)
	if err != nil {
		return models.Course{}, err
	}
	s.editingID = id
	s.logger.Debug().Str("courseID", id).Msg("Editing course")
	return course, nil
}

// Update validates the input and overwrites the course in the edit slot.
// On success the edit slot is cleared; on failure nothing changes.
func (s *courseStoreImpl) Update(in models.CourseInput) (models.Course, error) {
	if s.editingID == "" {
		return models.Course{}, apperrors.ErrNoActiveEdit
	}

	fields, err := validation.ValidateCourse(in)
	if err != nil {
		s.logger.Debug().Err(err).Str("courseID", s.editingID).Msg("Rejected course input on update")
		return models.Course{}, err
	}

	course := models.Course{
		ID:      s.editingID,
		Name:    fields.Name,
		Credits: fields.Credits,
		Score:   fields.Score,
	}
	if err := s.repo.Replace(course); err != nil {
		return models.Course{}, err
	}
	s.editingID = ""

	s.logger.Debug().Str("courseID", course.ID).Msg("Course updated")
	return course, nil
}

// Remove deletes the course with the given ID and returns the remaining courses.
// Removing an unknown ID is a no-op; removing the course being edited is rejected.
func (s *courseStoreImpl) Remove(id string) ([]models.Course, error) {
	if s.editingID != "" && id == s.editingID {
		return s.repo.List(), apperrors.ErrCannotDeleteWhileEditing
	}

	if s.repo.Delete(id) {
		s.logger.Debug().Str("courseID", id).Msg("Course removed")
	}
	return s.repo.List(), nil
}

// CancelEdit clears the edit slot
func (s *courseStoreImpl) CancelEdit() {
	s.editingID = ""
}

// Find returns a copy of the course with the given ID
func (s *courseStoreImpl) Find(id string) (models.Course, error) {
	return s.repo.GetByID(id)
}

// List returns a snapshot of the courses in insertion order
func (s *courseStoreImpl) List() []models.Course {
	return s.repo.List()
}

// Mode reports whether a course is being edited
func (s *courseStoreImpl) Mode() EditMode {
	if s.editingID != "" {
		return ModeEditing
	}
	return ModeIdle
}

// EditingID returns the ID in the edit slot, if any
func (s *courseStoreImpl) EditingID() (string, bool) {
	return s.editingID, s.editingID != ""
}
