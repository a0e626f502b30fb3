package domain

import "strings"

// Columns flights may be ordered by. A leading "-" on Sort flips the direction.
var flightSortColumns = map[string]struct{}{
	"id":             {},
	"departure_time": {},
	"price":          {},
	"flight_number":  {},
}

const defaultSortColumn = "departure_time"

type Pagination struct {
	Page     int
	PageSize int
	Sort     string
}

// SortColumn is safe to interpolate into SQL: unknown keys fall back to
// departure_time.
func (p Pagination) SortColumn() string {
	column := strings.TrimPrefix(p.Sort, "-")
	if _, ok := flightSortColumns[column]; !ok {
		return defaultSortColumn
	}

	return column
}

func (p Pagination) SortDirection() string {
	if strings.HasPrefix(p.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (p Pagination) Limit() int {
	return max(p.PageSize, 1)
}

func (p Pagination) Offset() int {
	return max(p.Page-1, 0) * p.Limit()
}
