package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabs_IndicatorFollowsActiveTab(t *testing.T) {
	tabs := NewTabs()
	x, w := tabs.Indicator()
	assert.Equal(t, 0, x)
	assert.Equal(t, 11, w) // "Populaire" + padding

	assert.True(t, tabs.Select(1))
	x, w = tabs.Indicator()
	assert.Equal(t, 12, x)
	assert.Equal(t, 8, w) // "Séries" is 6 cells

	tabs.Next()
	x, w = tabs.Indicator()
	assert.Equal(t, 21, x)
	assert.Equal(t, 9, w)

	tabs.Next()
	assert.Equal(t, 0, tabs.Active(), "wraps")
}

func TestTabs_SelectOutOfRange(t *testing.T) {
	tabs := NewTabs()
	assert.False(t, tabs.Select(5))
	assert.False(t, tabs.Select(0), "already active")
	tabs.Prev()
	assert.Equal(t, 2, tabs.Active())
}

func TestTabs_ResizeClipsIndicator(t *testing.T) {
	tabs := NewTabs()
	tabs.Select(2)
	tabs.SetWidth(25)
	x, w := tabs.Indicator()
	assert.Equal(t, 21, x)
	assert.Equal(t, 4, w)

	tabs.SetWidth(120)
	_, w = tabs.Indicator()
	assert.Equal(t, 9, w, "recomputed when the width grows back")
}

func TestTabs_Click(t *testing.T) {
	tabs := NewTabs()
	assert.Equal(t, 0, tabs.Click(3))
	assert.Equal(t, -1, tabs.Click(11), "gap between tabs")
	assert.Equal(t, 1, tabs.Click(12))
	assert.Equal(t, 2, tabs.Click(25))
	assert.Equal(t, -1, tabs.Click(40))
}

func TestTabs_ViewHasIndicatorLine(t *testing.T) {
	tabs := NewTabs()
	lines := strings.Split(tabs.View(), "\n")
	assert.Len(t, lines, TabHeight)
	assert.Contains(t, lines[1], "━")
}
