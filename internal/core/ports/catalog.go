package ports

import (
	"context"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// CourseFilter narrows a catalog listing. Zero values match everything.
type CourseFilter struct {
	Category string
	Level    string
	Query    string
}

// CatalogRepository is the read-only course catalog.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
}

// CatalogService lists catalog entries, optionally filtered.
type CatalogService interface {
	List(ctx context.Context, filter CourseFilter) ([]domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	Categories(ctx context.Context) ([]string, error)
}
