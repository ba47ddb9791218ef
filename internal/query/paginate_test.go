package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_PageSizes(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	// 25 items at limit 12 paginate as 12, 12, 1.
	page1, meta1 := Paginate(items, 1, 12)
	assert.Len(t, page1, 12)
	assert.Equal(t, 3, meta1.TotalPages)
	assert.True(t, meta1.HasMore)

	page2, meta2 := Paginate(items, 2, 12)
	assert.Len(t, page2, 12)
	assert.True(t, meta2.HasMore)

	page3, meta3 := Paginate(items, 3, 12)
	assert.Len(t, page3, 1)
	assert.False(t, meta3.HasMore)
	assert.Equal(t, 25, meta3.Total)
}

func TestPaginate_BeyondLastPage(t *testing.T) {
	items := []int{1, 2, 3}

	page, meta := Paginate(items, 5, 2)
	assert.Empty(t, page)
	assert.False(t, meta.HasMore)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 5, meta.Page)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	page, meta := Paginate([]int{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasMore)
}

func TestPaginate_Totality(t *testing.T) {
	items := make([]int, 37)
	for i := range items {
		items[i] = i
	}

	// Concatenating all pages reconstructs the collection exactly once.
	var rebuilt []int
	_, meta := Paginate(items, 1, 7)
	for page := 1; page <= meta.TotalPages; page++ {
		slice, _ := Paginate(items, page, 7)
		rebuilt = append(rebuilt, slice...)
	}
	assert.Equal(t, items, rebuilt)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	items := []int{1, 2, 3, 4}

	page2, meta := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page2)
	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasMore)
}
