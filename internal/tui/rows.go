package tui

import (
	"github.com/mmcdole/marquee/internal/tui/components"
)

// RowSet holds the page's carousels by section ID, in display order.
// Fixed rows are created up front; search and genre rows are added as
// their data arrives.
type RowSet struct {
	rows  map[string]*components.Carousel
	order []string
}

// NewRowSet creates an empty row set
func NewRowSet() *RowSet {
	return &RowSet{rows: make(map[string]*components.Carousel)}
}

// Len returns the number of rows
func (rs *RowSet) Len() int {
	return len(rs.order)
}

// Get returns the row with the given section ID, or nil
func (rs *RowSet) Get(id string) *components.Carousel {
	return rs.rows[id]
}

// IDs returns the section IDs in display order
func (rs *RowSet) IDs() []string {
	return append([]string(nil), rs.order...)
}

// Append adds a row at the end. An existing ID is left in place and returned.
func (rs *RowSet) Append(row *components.Carousel) *components.Carousel {
	return rs.Insert(len(rs.order), row)
}

// Insert adds a row at position idx. An existing ID is left in place and returned.
func (rs *RowSet) Insert(idx int, row *components.Carousel) *components.Carousel {
	if existing, ok := rs.rows[row.ID()]; ok {
		return existing
	}
	idx = min(max(idx, 0), len(rs.order))
	rs.rows[row.ID()] = row
	rs.order = append(rs.order, "")
	copy(rs.order[idx+1:], rs.order[idx:])
	rs.order[idx] = row.ID()
	return row
}

// Index returns the position of id, or -1
func (rs *RowSet) Index(id string) int {
	for i, rid := range rs.order {
		if rid == id {
			return i
		}
	}
	return -1
}

// Remove drops the row with the given ID
func (rs *RowSet) Remove(id string) {
	idx := rs.Index(id)
	if idx < 0 {
		return
	}
	delete(rs.rows, id)
	rs.order = append(rs.order[:idx], rs.order[idx+1:]...)
}

// SetSizes sets the width of every row, re-evaluating their controls
func (rs *RowSet) SetSizes(width int) {
	for _, row := range rs.rows {
		row.SetSize(width)
	}
}

// BlurAll removes focus from every row
func (rs *RowSet) BlurAll() {
	for _, row := range rs.rows {
		row.Blur()
	}
}
