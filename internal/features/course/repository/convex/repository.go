package convex

import (
	"context"
	"fmt"

	"learncast-backend/internal/features/course/models"
	"learncast-backend/internal/features/course/repository"
	"learncast-backend/internal/platform/convex"
)

type courseRepository struct {
	client *convex.Client
}

func NewCourseRepository(client *convex.Client) repository.CourseRepository {
	return &courseRepository{client: client}
}

func (r *courseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	var course *models.Course
	err := r.client.Query(ctx, "courses:getById", map[string]interface{}{"courseId": courseID}, &course)
	if err != nil {
		return nil, fmt.Errorf("get course %s: %w", courseID, err)
	}
	if course == nil {
		return nil, repository.ErrCourseNotFound
	}
	return course, nil
}

func (r *courseRepository) GetCourseNumber(ctx context.Context, courseID string) (int64, error) {
	course, err := r.GetByID(ctx, courseID)
	if err != nil {
		return 0, err
	}
	if course.CourseNumber == nil || *course.CourseNumber <= 0 {
		return 0, repository.ErrNoCourseNumber
	}
	return *course.CourseNumber, nil
}
