package service

import (
	"context"
	"time"

	bookdomain "github.com/Aranruth94/book-social-network/internal/book/domain"
	bookdto "github.com/Aranruth94/book-social-network/internal/book/dto"
	"github.com/Aranruth94/book-social-network/internal/book/policy"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
	"github.com/Aranruth94/book-social-network/internal/feedback/domain"
	"github.com/Aranruth94/book-social-network/internal/feedback/dto"
)

type FeedbackService struct {
	books    bookdomain.BookRepository
	feedback domain.FeedbackRepository
}

func NewFeedbackService(books bookdomain.BookRepository, feedback domain.FeedbackRepository) *FeedbackService {
	return &FeedbackService{books: books, feedback: feedback}
}

// Save accepts feedback on a borrowable book from anyone but its owner.
func (s *FeedbackService) Save(ctx context.Context, input dto.FeedbackRequest, userID int) (int, error) {
	book, err := s.books.GetByID(ctx, input.BookID)
	if err != nil {
		return 0, err
	}
	if book == nil {
		return 0, apperror.ErrBookNotFound
	}

	if !policy.IsBorrowable(book) {
		return 0, apperror.NewPermission("you cannot leave feedback for an archived or not shareable book")
	}
	if err := policy.AssertNotOwner(book, userID, "you cannot give feedback to your own book"); err != nil {
		return 0, err
	}

	feedback := &domain.Feedback{
		BookID:    input.BookID,
		UserID:    userID,
		Note:      input.Note,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return 0, err
	}
	return feedback.ID, nil
}

func (s *FeedbackService) FindAllByBook(ctx context.Context, bookID, page, size, userID int) (bookdto.PageResponse[dto.FeedbackResponse], error) {
	feedbacks, total, err := s.feedback.FindAllByBook(ctx, bookID, size, page*size)
	if err != nil {
		return bookdto.PageResponse[dto.FeedbackResponse]{}, err
	}

	responses := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		responses = append(responses, dto.FeedbackResponse{
			Note:        f.Note,
			Comment:     f.Comment,
			OwnFeedback: f.UserID == userID,
		})
	}
	return bookdto.NewPageResponse(responses, page, size, total), nil
}
