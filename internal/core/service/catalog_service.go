package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// CatalogService lists the course catalog with optional server-side
// filtering by category, level, and free-text search.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Course, 0, len(courses))
	for _, course := range courses {
		if !matches(course, filter) {
			continue
		}
		out = append(out, course)
	}
	return out, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

// Categories returns the distinct course categories, sorted.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(courses))
	cats := make([]string, 0, len(courses))
	for _, course := range courses {
		if _, ok := seen[course.Category]; ok {
			continue
		}
		seen[course.Category] = struct{}{}
		cats = append(cats, course.Category)
	}
	sort.Strings(cats)
	return cats, nil
}

func matches(course domain.Course, filter ports.CourseFilter) bool {
	if filter.Category != "" && course.Category != filter.Category {
		return false
	}
	if filter.Level != "" && string(course.Level) != filter.Level {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(course.Title), q) &&
			!strings.Contains(strings.ToLower(course.Description), q) {
			return false
		}
	}
	return true
}
