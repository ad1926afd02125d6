package domain

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPageIndex    = math.MaxInt32
)

// Page is an offset page: Index pages of Size records are skipped.
type Page struct {
	Index int
	Size  int
}

// NewPage parses raw page/size query values. Bad or negative page falls back to 0
// and page is capped at MaxPageIndex, size is clamped to [1, MaxPageSize] with
// DefaultPageSize when unset.
func NewPage(rawPage, rawSize string) Page {
	p := Page{Index: 0, Size: DefaultPageSize}

	if n, err := strconv.Atoi(rawPage); err == nil && n > 0 {
		p.Index = n
	}
	if n, err := strconv.Atoi(rawSize); err == nil && n > 0 {
		p.Size = n
	}
	if p.Index > MaxPageIndex {
		p.Index = MaxPageIndex
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	return p
}

func (p Page) Skip() int64 {
	index, size := int64(p.Index), int64(p.Size)
	if index <= 0 || size <= 0 {
		return 0
	}
	if index > math.MaxInt64/size {
		return math.MaxInt64
	}
	return index * size
}

func (p Page) Limit() int64 {
	return int64(p.Size)
}

type ListQuery struct {
	Search string
	Page   Page
}
