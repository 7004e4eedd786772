package dto

type FeedbackRequest struct {
	BookID  int     `json:"book_id"`
	Note    float64 `json:"note"`
	Comment string  `json:"comment"`
}

type FeedbackResponse struct {
	Note        float64 `json:"note"`
	Comment     string  `json:"comment"`
	OwnFeedback bool    `json:"own_feedback"`
}
