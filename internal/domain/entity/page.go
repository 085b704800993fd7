package entity

import "strconv"

// Page is the backend's pagination envelope for list endpoints.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
	Size          int `json:"size"`
	Number        int `json:"number"`
}

// PageRequest carries the pagination parameters passed through to the backend.
// Page numbering is zero-based, matching the backend's convention.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FormatID renders a backend numeric identifier for use in a URL path.
func FormatID(id int64) string {
	return formatID(id)
}
