package dto

import "github.com/yigit/gpacalc/internal/app/models"

// CourseItem is one course in a calculation request.
// Credits and score are optional on the wire and count as 0 when absent.
type CourseItem struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Credits *float64 `json:"credits" binding:"omitempty,gte=0"`
	Score   *float64 `json:"score" binding:"omitempty,gte=0,lte=100"`
}

// CalculateRequest is the body of POST /api/calculate. An empty list is rejected by the service.
type CalculateRequest struct {
	Courses []CourseItem `json:"courses" binding:"dive"`
}

// CalculateResponse is the body returned by a successful calculation
type CalculateResponse struct {
	GPA             float64 `json:"gpa" example:"3.7"`
	WeightedAverage float64 `json:"weightedAverage" example:"91"`
	TotalCredits    float64 `json:"totalCredits" example:"3"`
}

// NewCourseItems converts courses to their wire form
func NewCourseItems(courses []models.Course) []CourseItem {
	items := make([]CourseItem, 0, len(courses))
	for _, c := range courses {
		credits, score := c.Credits, c.Score
		items = append(items, CourseItem{
			ID:      c.ID,
			Name:    c.Name,
			Credits: &credits,
			Score:   &score,
		})
	}
	return items
}

// ToModels converts the request courses, defaulting absent numbers to 0
func (r CalculateRequest) ToModels() []models.Course {
	courses := make([]models.Course, 0, len(r.Courses))
	for _, item := range r.Courses {
		c := models.Course{ID: item.ID, Name: item.Name}
		if item.Credits != nil {
			c.Credits = *item.Credits
		}
		if item.Score != nil {
			c.Score = *item.Score
		}
		courses = append(courses, c)
	}
	return courses
}

// NewCalculateResponse creates a response from a result
func NewCalculateResponse(r *models.GPAResult) CalculateResponse {
	return CalculateResponse{
		GPA:             r.GPA,
		WeightedAverage: r.WeightedAverage,
		TotalCredits:    r.TotalCredits,
	}
}
