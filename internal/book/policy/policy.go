// Package policy holds the pure ownership and shareability predicates that
// gate every lending and feedback operation. No I/O, no hidden state.
package policy

import (
	"github.com/Aranruth94/book-social-network/internal/book/domain"
	apperror "github.com/Aranruth94/book-social-network/internal/errors"
)

func IsOwner(book *domain.Book, userID int) bool {
	return book.OwnerID == userID
}

func IsBorrowable(book *domain.Book) bool {
	return book.Shareable && !book.Archived
}

func AssertOwner(book *domain.Book, userID int, message string) error {
	if !IsOwner(book, userID) {
		return apperror.NewPermission(message)
	}
	return nil
}

func AssertNotOwner(book *domain.Book, userID int, message string) error {
	if IsOwner(book, userID) {
		return apperror.NewPermission(message)
	}
	return nil
}

func AssertBorrowable(book *domain.Book) error {
	if !IsBorrowable(book) {
		return apperror.NewPermission("book cannot be borrowed since it is archived or not shareable")
	}
	return nil
}
