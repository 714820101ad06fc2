package request

type BookEventRequest struct {
	Participants int `json:"participants" binding:"required,min=1"`
}
