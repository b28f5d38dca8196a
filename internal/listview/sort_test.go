package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortField(t *testing.T) {
	tests := []struct {
		input   string
		want    SortField
		wantErr bool
	}{
		{input: "title", want: SortByTitle},
		{input: " Price ", want: SortByPrice},
		{input: "name", want: SortByTitle},
		{input: "rating", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortField(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSortField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortField_Strings(t *testing.T) {
	assert.Equal(t, "title", SortByTitle.String())
	assert.Equal(t, "price", SortByPrice.String())
	assert.Equal(t, "unknown", SortField(9).String())
	assert.Equal(t, "Title", SortByTitle.Label())
	assert.Equal(t, "Price", SortByPrice.Label())
	assert.Len(t, SortFields, numSortFields)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Ascending, Unsorted.Toggle())
	assert.Equal(t, Descending, Ascending.Toggle())
	assert.Equal(t, Ascending, Descending.Toggle())

	assert.Equal(t, "none", Unsorted.String())
	assert.Equal(t, "asc", Ascending.String())
	assert.Equal(t, "desc", Descending.String())

	assert.Empty(t, Unsorted.Arrow())
	assert.Equal(t, "▲", Ascending.Arrow())
	assert.Equal(t, "▼", Descending.Arrow())
}
