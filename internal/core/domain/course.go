package domain

// CourseLevel is the difficulty tier of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// Course is a catalog entry shown on the courses page. The catalog is
// read-only pre-launch content; enrollment is not part of this system.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Instructor  string      `json:"instructor"`
	Duration    string      `json:"duration"`
	Level       CourseLevel `json:"level"`
	Price       float64     `json:"price"`
	Rating      float64     `json:"rating"`
	Students    int         `json:"students"`
	Thumbnail   string      `json:"thumbnail"`
	Category    string      `json:"category"`
	IsLaunched  bool        `json:"is_launched"`
}
