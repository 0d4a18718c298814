package dto

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Instructor  string  `json:"instructor" validate:"required"`
}

type UpdateCourseRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Instructor  *string `json:"instructor" validate:"omitempty,min=1"`
}

func (r UpdateCourseRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Instructor != nil {
		updates["instructor"] = *r.Instructor
	}
	return updates
}
