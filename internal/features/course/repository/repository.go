package repository

import (
	"context"
	"errors"

	"learncast-backend/internal/features/course/models"
)

var (
	// ErrCourseNotFound means no course document exists for the ID.
	ErrCourseNotFound = errors.New("course not found")

	// ErrNoCourseNumber means the course exists but has no on-chain number
	// assigned, so it cannot be minted. Distinct from ErrCourseNotFound on
	// purpose: the registry may lag behind course creation.
	ErrNoCourseNumber = errors.New("course has no on-chain number")
)

// CourseRepository reads the course registry.
type CourseRepository interface {
	GetByID(ctx context.Context, courseID string) (*models.Course, error)

	// GetCourseNumber resolves the on-chain number for a course. Returns
	// ErrCourseNotFound or ErrNoCourseNumber when not resolvable.
	GetCourseNumber(ctx context.Context, courseID string) (int64, error)
}
