package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
	"github.com/animationlms/platform-api/internal/infrastructure/db/memory"
)

func TestCatalogService_List_Unfiltered(t *testing.T) {
	svc := NewCatalogService(memory.NewCatalogRepository(), zerolog.Nop())

	courses, err := svc.List(context.Background(), ports.CourseFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(courses) != 6 {
		t.Fatalf("expected 6 seed courses, got %d", len(courses))
	}
}

func TestCatalogService_List_Filters(t *testing.T) {
	svc := NewCatalogService(memory.NewCatalogRepository(), zerolog.Nop())
	ctx := context.Background()

	byCategory, err := svc.List(ctx, ports.CourseFilter{Category: "3D Animation"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 3D Animation courses, got %d", len(byCategory))
	}

	byLevel, err := svc.List(ctx, ports.CourseFilter{Level: string(domain.LevelBeginner)})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byLevel) != 2 {
		t.Fatalf("expected 2 beginner courses, got %d", len(byLevel))
	}

	byQuery, err := svc.List(ctx, ports.CourseFilter{Query: "storyboard"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].ID != "5" {
		t.Fatalf("expected the storyboarding course, got %+v", byQuery)
	}

	none, err := svc.List(ctx, ports.CourseFilter{Category: "3D Animation", Level: string(domain.LevelBeginner)})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestCatalogService_Get(t *testing.T) {
	svc := NewCatalogService(memory.NewCatalogRepository(), zerolog.Nop())

	course, err := svc.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if course.Title != "2D Character Animation Fundamentals" {
		t.Fatalf("unexpected course: %+v", course)
	}

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCatalogService_Categories(t *testing.T) {
	svc := NewCatalogService(memory.NewCatalogRepository(), zerolog.Nop())

	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}

	want := []string{"2D Animation", "3D Animation", "Motion Graphics", "Pre-Production", "VFX"}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d (%v)", len(want), len(cats), cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("expected sorted categories %v, got %v", want, cats)
		}
	}
}
