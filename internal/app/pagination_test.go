package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "first page", page: 1, size: 10, offset: 0, limit: 10},
		{name: "later page", page: 3, size: 20, offset: 40, limit: 20},
		{name: "zero page falls back to first", page: 0, size: 10, offset: 0, limit: 10},
		{name: "negative page falls back to first", page: -2, size: 5, offset: 0, limit: 5},
		{name: "zero size gets default", page: 2, size: 0, offset: 10, limit: 10},
		{name: "negative size gets default", page: 1, size: -1, offset: 0, limit: 10},
		{name: "max size passes through", page: 1, size: 100, offset: 0, limit: 100},
		{name: "oversized size clamps to max", page: 1, size: 500, offset: 0, limit: 100},
		{name: "oversized size clamps on later pages too", page: 2, size: 101, offset: 100, limit: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := paginate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}
