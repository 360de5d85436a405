package entity

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageQuery is a normalized page request
type PageQuery struct {
	Page  int
	Limit int
}

// NewPageQuery clamps page and limit to sane values
func NewPageQuery(page, limit int) PageQuery {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageQuery{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PageInfo describes where a page sits in the full result set
type PageInfo struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
}

// NewPageInfo computes pages as ceil(total/limit)
func NewPageInfo(q PageQuery, total int64) PageInfo {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return PageInfo{Page: q.Page, Pages: pages, Total: total, Limit: q.Limit}
}

// Page is one slice of a listing
type Page[T any] struct {
	Items []T
	Info  PageInfo
}

// RequestFilter narrows a financial request listing. An empty RequesterID lists every user.
type RequestFilter struct {
	Kind        RequestKind
	RequesterID string
	Status      RequestStatus
	Search      string
}
