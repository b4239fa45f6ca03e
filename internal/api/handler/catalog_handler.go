package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/ports"
)

// CatalogHandler serves the public course catalog.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type courseListResponse struct {
	Courses []domain.Course `json:"courses"`
	Count   int             `json:"count"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// List handles GET /courses with optional category, level, and q filters.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        category  query     string  false  "Exact category match"
// @Param        level     query     string  false  "Beginner, Intermediate, or Advanced"
// @Param        q         query     string  false  "Free-text match on title/description"
// @Success      200       {object}  courseListResponse
// @Router       /courses [get]
func (h *CatalogHandler) List(c echo.Context) error {
	courses, err := h.catalog.List(c.Request().Context(), ports.CourseFilter{
		Category: c.QueryParam("category"),
		Level:    c.QueryParam("level"),
		Query:    c.QueryParam("q"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courseListResponse{Courses: courses, Count: len(courses)})
}

// Get handles GET /courses/:id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	course, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Categories handles GET /courses/categories.
//
// @Summary      List course categories
// @Tags         courses
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /courses/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	cats, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{Categories: cats})
}
