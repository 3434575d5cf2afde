package app

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// paginate turns a 1-based page number and page size into offset/limit.
func paginate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return (page - 1) * size, size
}
