package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"learncast-backend/internal/features/course/models"
	"learncast-backend/internal/features/course/repository"
)

const courseNumberKeyFmt = "course:number:%s"

// courseNumberCache is a read-through cache over the course registry for
// GetCourseNumber. Course numbers are immutable once assigned, so stale
// reads cannot occur; negative results are never cached so a newly mapped
// course becomes mintable immediately. Cache failures degrade to the
// underlying registry.
type courseNumberCache struct {
	client *redis.Client
	next   repository.CourseRepository
	ttl    time.Duration
}

func NewCourseNumberCache(client *redis.Client, next repository.CourseRepository, ttl time.Duration) repository.CourseRepository {
	return &courseNumberCache{client: client, next: next, ttl: ttl}
}

func (c *courseNumberCache) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	return c.next.GetByID(ctx, courseID)
}

func (c *courseNumberCache) GetCourseNumber(ctx context.Context, courseID string) (int64, error) {
	key := fmt.Sprintf(courseNumberKeyFmt, courseID)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		if n, perr := strconv.ParseInt(cached, 10, 64); perr == nil && n > 0 {
			return n, nil
		}
	} else if err != redis.Nil {
		log.Warn().Err(err).Str("course_id", courseID).Msg("course number cache read failed")
	}

	n, err := c.next.GetCourseNumber(ctx, courseID)
	if err != nil {
		return 0, err
	}

	if err := c.client.Set(ctx, key, strconv.FormatInt(n, 10), c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("course_id", courseID).Msg("course number cache write failed")
	}
	return n, nil
}
