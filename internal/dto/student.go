package dto

// TimeWindowPayload is one availability window as submitted by the client.
// Start and end accept "HH:MM" or "HH:MM:SS".
type TimeWindowPayload struct {
	Day   string `json:"day" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// SubmitStudentRequest is the student submission payload.
type SubmitStudentRequest struct {
	Name         string              `json:"name" validate:"required"`
	LessonType   string              `json:"lesson_type" validate:"required,oneof=group private flexible_group flexible_private"`
	SwimStyles   []string            `json:"swim_style" validate:"required,min=1,dive,required"`
	Availability []TimeWindowPayload `json:"availability" validate:"required,min=1,dive"`
}

// SubmitStudentResponse reports the accepted name and remaining capacity.
type SubmitStudentResponse struct {
	Name           string `json:"name"`
	RemainingSpots int    `json:"remaining_spots"`
}

// StudentRecord is one submitted request as returned by the listing
// endpoint.
type StudentRecord struct {
	Name         string              `json:"name"`
	LessonType   string              `json:"lesson_type"`
	SwimStyles   []string            `json:"swim_style"`
	Availability []TimeWindowPayload `json:"availability"`
}

// StudentCountResponse carries the registry size.
type StudentCountResponse struct {
	Count int `json:"count"`
}
