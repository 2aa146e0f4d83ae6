package model

// Page is one slice of a list endpoint, numbered from zero.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
}

// NewPage derives the page counters from the requested window and the total row count.
// A nil content slice is rendered as an empty list.
func NewPage[T any](content []T, number int, size int, totalElements int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 && totalElements > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}

	return &Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            number == 0,
		Last:             number >= totalPages-1,
	}
}
