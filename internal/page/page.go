// Package page implements the generic list view behavior every entity
// surface shares: substring search across all fields and fixed-size
// pagination with clamped navigation.
package page

import (
	"fmt"
	"strings"

	"github.com/clinicore/admin-api/internal/store"
)

// DefaultPageSize matches every observed entity page.
const DefaultPageSize = 5

// View is one rendered page of a filtered collection.
type View[T any] struct {
	Items      []T `json:"records"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// Filter keeps records where any stringified field value contains the
// term, case-insensitively. An empty term matches everything.
func Filter[T any](items []T, term string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, needle) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, needle string) bool {
	rec, err := store.Encode(item)
	if err != nil {
		return false
	}
	for _, v := range rec {
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(stringify(v)), needle) {
			return true
		}
	}
	return false
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Trim the ".0" json gives whole numbers so "35" matches age 35.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Paginate slices one page out of the filtered records. Page numbers
// are clamped to [1, totalPages]; navigation never wraps.
func Paginate[T any](items []T, pageNum, pageSize int) View[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if pageNum < 1 {
		pageNum = 1
	}
	if pageNum > totalPages {
		pageNum = totalPages
	}

	start := (pageNum - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View[T]{
		Items:      items[start:end],
		Page:       pageNum,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}
