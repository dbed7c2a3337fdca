// Package pagination computes the page links shown under paginated tables.
package pagination

import "strconv"

// Item is a single entry in the page-link strip: either a page or an ellipsis.
type Item struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Active   bool `json:"active,omitempty"`
}

// Window returns the page links for the current page: the first page, the pages
// adjacent to current, the last page, and an ellipsis wherever pages are skipped.
func Window(current, total int) []Item {
	items := make([]Item, 0, 7)
	page := func(n int) Item {
		return Item{Page: n, Active: n == current}
	}

	if total > 0 {
		items = append(items, page(1))
	}

	if current > 3 {
		items = append(items, Item{Ellipsis: true})
	}

	for i := max(2, current-1); i <= min(total-1, current+1); i++ {
		items = append(items, page(i))
	}

	if current < total-2 {
		items = append(items, Item{Ellipsis: true})
	}

	if total > 1 {
		items = append(items, page(total))
	}

	return items
}

// Range returns the 1-based positions of the first and last record on a page.
func Range(current, limit, total int) (from, to int) {
	from = (current-1)*limit + 1
	to = min(current*limit, total)
	return from, to
}

// ClampPage parses a page query value; anything unparsable or below 1 is page 1.
func ClampPage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// InRange reports whether page is a valid navigation target.
func InRange(page, totalPages int) bool {
	return page >= 1 && page <= totalPages
}
