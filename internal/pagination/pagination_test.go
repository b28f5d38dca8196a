package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		sortStr   string
		wantField string
		wantOrder string
		wantErr   bool
	}{
		{
			name:      "empty",
			sortStr:   "",
			wantField: DefaultSortField,
			wantOrder: DefaultSortOrder,
		},
		{
			name:      "field only",
			sortStr:   "price",
			wantField: "price",
			wantOrder: "asc",
		},
		{
			name:      "field and order desc",
			sortStr:   "title:desc",
			wantField: "title",
			wantOrder: "desc",
		},
		{
			name:      "mixed case is normalized",
			sortStr:   " Title : DESC ",
			wantField: "title",
			wantOrder: "desc",
		},
		{
			name:    "invalid format",
			sortStr: "field:order:extra",
			wantErr: true,
		},
		{
			name:    "empty field",
			sortStr: ":asc",
			wantErr: true,
		},
		{
			name:    "invalid order",
			sortStr: "price:sideways",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.sortStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{name: "empty set is one page", total: 0, size: 5, want: 1},
		{name: "exact multiple", total: 10, size: 5, want: 2},
		{name: "remainder adds a page", total: 12, size: 5, want: 3},
		{name: "fewer than a page", total: 3, size: 5, want: 1},
		{name: "non-positive size clamps to 1", total: 4, size: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.size))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(-4, 3))
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(5, 3))
	assert.Equal(t, 1, ClampPage(5, 0), "zero pages degenerates to page 1")
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		size      int
		total     int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", page: 1, size: 5, total: 12, wantStart: 0, wantEnd: 5},
		{name: "last partial page", page: 3, size: 5, total: 12, wantStart: 10, wantEnd: 12},
		{name: "beyond last page clamps", page: 9, size: 5, total: 12, wantStart: 10, wantEnd: 12},
		{name: "below first page clamps", page: -1, size: 5, total: 12, wantStart: 0, wantEnd: 5},
		{name: "empty set", page: 1, size: 5, total: 0, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Bounds(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPageSizeOptions(t *testing.T) {
	t.Run("ParsePageSize accepts options", func(t *testing.T) {
		for _, opt := range PageSizeOptions {
			got, err := ParsePageSize(" " + strconv.Itoa(opt) + " ")
			require.NoError(t, err)
			assert.Equal(t, opt, got)
		}
	})

	t.Run("ParsePageSize rejects other values", func(t *testing.T) {
		for _, raw := range []string{"0", "7", "-5", "ten", ""} {
			_, err := ParsePageSize(raw)
			require.ErrorIs(t, err, ErrInvalidPageSize, raw)
		}
	})

	t.Run("NextPageSize cycles", func(t *testing.T) {
		assert.Equal(t, 10, NextPageSize(5))
		assert.Equal(t, 20, NextPageSize(10))
		assert.Equal(t, 50, NextPageSize(20))
		assert.Equal(t, 5, NextPageSize(50))
		assert.Equal(t, 5, NextPageSize(7))
	})

	t.Run("NormalizePageSize", func(t *testing.T) {
		assert.Equal(t, MinPageSize, NormalizePageSize(-3))
		assert.Equal(t, 20, NormalizePageSize(20))
		assert.Equal(t, MaxPageSize, NormalizePageSize(MaxPageSize+1))
	})
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		size  int
		total int
		want  Meta
	}{
		{
			name:  "first page",
			page:  1,
			size:  10,
			total: 25,
			want: Meta{
				CurrentPage: 1,
				PageSize:    10,
				TotalPages:  3,
				TotalItems:  25,
				HasPrevious: false,
				HasNext:     true,
			},
		},
		{
			name:  "middle page",
			page:  2,
			size:  10,
			total: 25,
			want: Meta{
				CurrentPage: 2,
				PageSize:    10,
				TotalPages:  3,
				TotalItems:  25,
				HasPrevious: true,
				HasNext:     true,
			},
		},
		{
			name:  "page beyond range is clamped",
			page:  7,
			size:  10,
			total: 25,
			want: Meta{
				CurrentPage: 3,
				PageSize:    10,
				TotalPages:  3,
				TotalItems:  25,
				HasPrevious: true,
				HasNext:     false,
			},
		},
		{
			name:  "empty result set",
			page:  1,
			size:  5,
			total: 0,
			want: Meta{
				CurrentPage: 1,
				PageSize:    5,
				TotalPages:  1,
				TotalItems:  0,
				HasPrevious: false,
				HasNext:     false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.page, tt.size, tt.total))
		})
	}
}
