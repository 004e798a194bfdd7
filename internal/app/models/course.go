package models

// Course represents one entry of the course list.
// ID is assigned at creation and never changes across updates.
type Course struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Credits float64 `json:"credits"`
	Score   float64 `json:"score"`
}

// CourseInput holds the raw form values as typed by the user.
type CourseInput struct {
	Name    string
	Credits string
	Score   string
}

// CourseFields holds validated, parsed course values.
type CourseFields struct {
	Name    string
	Credits float64
	Score   float64
}

// Input returns the course as form values, used to pre-fill the edit form.
func (c Course) Input() CourseInput {
	return CourseInput{
		Name:    c.Name,
		Credits: FormatNumber(c.Credits),
		Score:   FormatNumber(c.Score),
	}
}
