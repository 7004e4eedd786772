package domain

//go:generate mockgen -destination=../../mocks/mock_feedback_repository.go -package=mocks github.com/Aranruth94/book-social-network/internal/feedback/domain FeedbackRepository

import (
	"context"
	"time"
)

type Feedback struct {
	ID        int
	BookID    int
	UserID    int
	Note      float64
	Comment   string
	CreatedAt time.Time
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *Feedback) error
	FindAllByBook(ctx context.Context, bookID, limit, offset int) ([]Feedback, int, error)
}
