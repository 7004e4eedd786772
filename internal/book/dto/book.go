package dto

type BookRequest struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	ISBN       string `json:"isbn"`
	Synopsis   string `json:"synopsis"`
	Shareable  bool   `json:"shareable"`
}

type BookResponse struct {
	ID         int     `json:"id"`
	OwnerID    int     `json:"owner_id"`
	Title      string  `json:"title"`
	AuthorName string  `json:"author_name"`
	ISBN       string  `json:"isbn"`
	Synopsis   string  `json:"synopsis"`
	Shareable  bool    `json:"shareable"`
	Archived   bool    `json:"archived"`
	Rate       float64 `json:"rate"`
}

type BorrowedBookResponse struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	AuthorName     string  `json:"author_name"`
	ISBN           string  `json:"isbn"`
	Rate           float64 `json:"rate"`
	Returned       bool    `json:"returned"`
	ReturnApproved bool    `json:"return_approved"`
}
