package service

import (
	"sort"
	"strings"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/sahilm/fuzzy"
)

// FilterItem is one card in the local filter index
type FilterItem struct {
	Item      domain.MediaItem
	SectionID string
}

// FilterResult is a match with metadata for highlighting
type FilterResult struct {
	FilterItem
	MatchedIndexes []int // Character positions that matched
	Score          int   // Match score (higher is better)
}

// FilterIndex implements sahilm/fuzzy.Source for zero-allocation fuzzy matching
type FilterIndex struct {
	items       []FilterItem
	lowerTitles []string // Pre-computed lowercase titles
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *FilterIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *FilterIndex) Len() int { return len(idx.items) }

// Filter is a fuzzy title filter over every card loaded on the page.
// An item present in several sections is indexed once, under the first section.
type Filter struct {
	mu      sync.RWMutex
	index   *FilterIndex
	indexed map[string]bool
}

// NewFilter creates an empty filter
func NewFilter() *Filter {
	return &Filter{index: &FilterIndex{}, indexed: make(map[string]bool)}
}

// Index adds the items of a section, skipping items already indexed
func (f *Filter) Index(section domain.Section) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range section.Items {
		key := item.Key()
		if item.ID == 0 || f.indexed[key] {
			continue
		}
		f.indexed[key] = true
		f.index.items = append(f.index.items, FilterItem{Item: item, SectionID: section.ID})
		f.index.lowerTitles = append(f.index.lowerTitles, strings.ToLower(item.Title))
	}
}

// Len returns the number of indexed items
func (f *Filter) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.index.Len()
}

// Find returns matches for query, best first. An empty query returns nothing.
func (f *Filter) Find(query string, max int) []FilterResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	matches := fuzzy.FindFrom(query, f.index)
	sort.Stable(matches)

	results := make([]FilterResult, 0, len(matches))
	for _, m := range matches {
		if max > 0 && len(results) == max {
			break
		}
		results = append(results, FilterResult{
			FilterItem:     f.index.items[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		})
	}
	return results
}

// Reset clears the index
func (f *Filter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.index = &FilterIndex{}
	f.indexed = make(map[string]bool)
}
