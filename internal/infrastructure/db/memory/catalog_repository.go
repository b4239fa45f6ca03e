package memory

import (
	"context"

	"github.com/animationlms/platform-api/internal/core/domain"
)

// CatalogRepository serves the pre-launch course catalog from a fixed
// in-memory dataset. Courses are authored content, not user data; until the
// platform launches they ship with the binary.
type CatalogRepository struct {
	courses []domain.Course
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{courses: seedCourses}
}

func (r *CatalogRepository) FindAll(_ context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *CatalogRepository) FindByID(_ context.Context, id string) (*domain.Course, error) {
	for _, course := range r.courses {
		if course.ID == id {
			c := course
			return &c, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

var seedCourses = []domain.Course{
	{
		ID:          "1",
		Title:       "2D Character Animation Fundamentals",
		Description: "Learn the basics of 2D character animation using industry-standard techniques and software.",
		Instructor:  "Sarah Johnson",
		Duration:    "8 weeks",
		Level:       domain.LevelBeginner,
		Price:       299,
		Rating:      4.8,
		Students:    1250,
		Thumbnail:   "/2d-character-animation.png",
		Category:    "2D Animation",
	},
	{
		ID:          "2",
		Title:       "3D Modeling for Animation",
		Description: "Master 3D modeling techniques specifically designed for animation workflows.",
		Instructor:  "Mike Chen",
		Duration:    "10 weeks",
		Level:       domain.LevelIntermediate,
		Price:       399,
		Rating:      4.9,
		Students:    890,
		Thumbnail:   "/3d-modeling-animation.png",
		Category:    "3D Animation",
	},
	{
		ID:          "3",
		Title:       "Motion Graphics Mastery",
		Description: "Create stunning motion graphics for commercials, films, and digital media.",
		Instructor:  "Emma Rodriguez",
		Duration:    "6 weeks",
		Level:       domain.LevelIntermediate,
		Price:       349,
		Rating:      4.7,
		Students:    675,
		Thumbnail:   "/motion-graphics-design.png",
		Category:    "Motion Graphics",
	},
	{
		ID:          "4",
		Title:       "Advanced Rigging Techniques",
		Description: "Professional character rigging for complex animation projects.",
		Instructor:  "David Park",
		Duration:    "12 weeks",
		Level:       domain.LevelAdvanced,
		Price:       499,
		Rating:      4.9,
		Students:    420,
		Thumbnail:   "/character-rigging-animation.png",
		Category:    "3D Animation",
	},
	{
		ID:          "5",
		Title:       "Storyboarding for Animation",
		Description: "Learn to create compelling storyboards that bring your animation ideas to life.",
		Instructor:  "Lisa Thompson",
		Duration:    "4 weeks",
		Level:       domain.LevelBeginner,
		Price:       199,
		Rating:      4.6,
		Students:    980,
		Thumbnail:   "/storyboard-animation.png",
		Category:    "Pre-Production",
	},
	{
		ID:          "6",
		Title:       "VFX Compositing Essentials",
		Description: "Master the art of visual effects compositing for film and television.",
		Instructor:  "Alex Kumar",
		Duration:    "8 weeks",
		Level:       domain.LevelAdvanced,
		Price:       449,
		Rating:      4.8,
		Students:    560,
		Thumbnail:   "/vfx-compositing.png",
		Category:    "VFX",
	},
}
