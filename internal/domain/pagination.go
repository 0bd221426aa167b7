package domain

// Page is a computed view over an ordered collection. It is never cached.
type Page[T any] struct {
	Number int
	Start  int
	End    int
	Total  int
	Items  []T
}

// PageBounds returns the half-open range [start, end) covered by page for a collection of
// total items. Pages are 1-based. A page with no data behind it, including page 1 of an
// empty collection, is an OUT_OF_RANGE error.
func PageBounds(total, page, pageSize int) (int, int, error) {
	if pageSize < 1 {
		return 0, 0, NewPageOutOfRangeError(page, "Page size is not a valid positive integer")
	}
	if page < 1 {
		return 0, 0, NewPageOutOfRangeError(page, "Page is not a valid positive integer")
	}
	// Compare page counts first; (page-1)*pageSize can overflow.
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	if page > pages {
		return 0, 0, NewPageOutOfRangeError(page, "Page is out of bound")
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end, nil
}

// Paginate slices items for the requested page. The returned Items share the backing
// array of items.
func Paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	start, end, err := PageBounds(len(items), page, pageSize)
	if err != nil {
		return Page[T]{}, err
	}
	return Page[T]{
		Number: page,
		Start:  start,
		End:    end,
		Total:  len(items),
		Items:  items[start:end],
	}, nil
}
