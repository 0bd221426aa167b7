package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func assertOutOfRange(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeOutOfRange, domainErr.Code)
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		pageSize  int
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"first page", 23, 1, 10, 0, 10, false},
		{"middle page", 23, 2, 10, 10, 20, false},
		{"last partial page", 23, 3, 10, 20, 23, false},
		{"page past the end", 23, 4, 10, 0, 0, true},
		{"exact fit last page", 20, 2, 10, 10, 20, false},
		{"page after exact fit", 20, 3, 10, 0, 0, true},
		{"zero page", 23, 0, 10, 0, 0, true},
		{"negative page", 23, -2, 10, 0, 0, true},
		{"empty collection first page", 0, 1, 10, 0, 0, true},
		{"zero page size", 23, 1, 0, 0, 0, true},
		{"single item", 1, 1, 10, 0, 1, false},
		{"huge page", 23, 1000000000000000000, 10, 0, 0, true},
		{"max int page", 23, math.MaxInt, 10, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := PageBounds(tt.total, tt.page, tt.pageSize)
			if tt.wantErr {
				assertOutOfRange(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPaginate_RangeProperties(t *testing.T) {
	for total := 1; total <= 35; total++ {
		items := makeInts(total)
		for pageSize := 1; pageSize <= 12; pageSize++ {
			lastPage := (total + pageSize - 1) / pageSize
			for page := 1; page <= lastPage; page++ {
				p, err := Paginate(items, page, pageSize)
				require.NoError(t, err, "total=%d size=%d page=%d", total, pageSize, page)
				assert.LessOrEqual(t, 0, p.Start)
				assert.LessOrEqual(t, p.Start, p.End)
				assert.LessOrEqual(t, p.End, total)
				assert.LessOrEqual(t, p.End-p.Start, pageSize)
				assert.Equal(t, items[p.Start:p.End], p.Items)
				if page == 1 {
					assert.Equal(t, 0, p.Start)
				}
			}
			_, err := Paginate(items, lastPage+1, pageSize)
			assertOutOfRange(t, err)
		}
	}
}

func TestPaginate_TwentyThreeItems(t *testing.T) {
	items := makeInts(23)

	p, err := Paginate(items, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Start)
	assert.Equal(t, 23, p.End)
	assert.Equal(t, 23, p.Total)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, []int{20, 21, 22}, p.Items)

	_, err = Paginate(items, 4, 10)
	assertOutOfRange(t, err)
}

func TestPaginate_HugePageDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := Paginate(makeInts(23), 1000000000000000000, 10)
		assertOutOfRange(t, err)
	})
}

func TestPaginate_EmptyCollection(t *testing.T) {
	_, err := Paginate([]string{}, 1, 10)
	assertOutOfRange(t, err)

	_, err = Paginate[string](nil, 1, 10)
	assertOutOfRange(t, err)
}

func TestPaginate_OutOfRangeCarriesPage(t *testing.T) {
	_, err := Paginate(makeInts(5), 0, 10)
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 0, domainErr.Context["page"])
	assert.Equal(t, "Page is not a valid positive integer", domainErr.Message)
}
