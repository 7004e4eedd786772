package dto

// PageResponse is the shared paging envelope for list endpoints.
type PageResponse[T any] struct {
	Content       []T  `json:"content"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
	TotalElements int  `json:"total_elements"`
	TotalPages    int  `json:"total_pages"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

func NewPageResponse[T any](content []T, page, size, total int) PageResponse[T] {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return PageResponse[T]{
		Content:       content,
		Number:        page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
