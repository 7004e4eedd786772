package domain

import "time"

type Book struct {
	ID         int
	OwnerID    int
	Title      string
	AuthorName string
	ISBN       string
	Synopsis   string
	Shareable  bool
	Archived   bool
	Rate       float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LoanStatus is the explicit loan lifecycle state. Storage keeps the two
// historical booleans (returned, return_approved); the repository maps
// between the two representations so illegal combinations never reach the
// domain.
type LoanStatus int

const (
	LoanActive LoanStatus = iota
	LoanReturned
	LoanReturnApproved
)

func (s LoanStatus) String() string {
	switch s {
	case LoanActive:
		return "active"
	case LoanReturned:
		return "returned"
	case LoanReturnApproved:
		return "return_approved"
	default:
		return "unknown"
	}
}

// Loan is one entry in the append-only borrow audit trail. It references its
// book and borrower by id; nothing points back at it.
type Loan struct {
	ID         int
	BookID     int
	BorrowerID int
	Status     LoanStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Book is populated by list queries that join the books table.
	Book *Book
}
