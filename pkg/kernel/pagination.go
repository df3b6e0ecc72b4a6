package kernel

// PaginationOptions describes the requested page
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Offset returns the row offset for the requested page
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page describes the returned page
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// Paginated wraps a page of items
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}

// NewPage computes page metadata from a total row count
func NewPage(opts PaginationOptions, total int) Page {
	pages := 0
	if opts.PageSize > 0 {
		pages = (total + opts.PageSize - 1) / opts.PageSize
	}
	return Page{
		Number: opts.Page,
		Size:   opts.PageSize,
		Total:  total,
		Pages:  pages,
	}
}
