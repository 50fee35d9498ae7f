package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedHero(t *testing.T, n int) Hero {
	t.Helper()
	h := NewHero(3 * time.Second)
	if n > 0 {
		require.NotNil(t, h.Load(sampleItems(n)))
	}
	return h
}

func TestHero_ShowIsModulo(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		h := loadedHero(t, n)
		for _, i := range []int{-11, -5, -1, 0, 1, 4, 5, 6, 99, 1000} {
			h.Show(i)
			want := ((i % n) + n) % n
			assert.Equal(t, want, h.Active(), "n=%d i=%d", n, i)
			assert.GreaterOrEqual(t, h.Active(), 0)
			assert.Less(t, h.Active(), n)
		}
	}
}

func TestHero_EmptyIsIdle(t *testing.T) {
	h := NewHero(3 * time.Second)
	assert.Nil(t, h.Load(nil))
	assert.NotPanics(t, func() {
		h.Next()
		h.Prev()
		h.Show(3)
	})
	assert.Equal(t, 0, h.Active())
	assert.False(t, h.Playing())
	assert.Empty(t, h.View())
	assert.Nil(t, h.Start(time.Second))
	assert.Nil(t, h.Click(2, heroDotsLine))

	_, ok := h.Current()
	assert.False(t, ok)
}

func TestHero_NextWrapsAround(t *testing.T) {
	h := loadedHero(t, 3)
	h.Show(0)
	h.Next()
	h.Next()
	h.Next()
	assert.Equal(t, 0, h.Active())

	h.Prev()
	assert.Equal(t, 2, h.Active())
}

func TestHero_LoadStartsPlaying(t *testing.T) {
	h := loadedHero(t, 4)
	assert.True(t, h.Playing())
	assert.Equal(t, 0, h.Active())
}

func TestHero_LoadWhileHoveredStaysPaused(t *testing.T) {
	h := NewHero(3 * time.Second)
	assert.Nil(t, h.Hover(true))

	assert.Nil(t, h.Load(sampleItems(2)))
	assert.True(t, h.Hovered())
	assert.False(t, h.Playing())

	h, _, _ = h.Update(HeroTickMsg{Gen: h.gen})
	assert.Equal(t, 0, h.Active())

	assert.NotNil(t, h.Hover(false))
	assert.True(t, h.Playing())
}

func TestHero_TickAdvancesOnlyCurrentGeneration(t *testing.T) {
	h := loadedHero(t, 4)
	gen := h.gen

	h, cmd, _ := h.Update(HeroTickMsg{Gen: gen})
	assert.Equal(t, 1, h.Active())
	assert.NotNil(t, cmd, "timer re-arms")

	h.Start(3 * time.Second)
	h, cmd, _ = h.Update(HeroTickMsg{Gen: gen})
	assert.Equal(t, 1, h.Active(), "tick from a previous Start is ignored")
	assert.Nil(t, cmd)
}

func TestHero_StartIsIdempotent(t *testing.T) {
	h := loadedHero(t, 3)
	h.Start(3 * time.Second)
	h.Start(3 * time.Second)
	gen := h.gen

	// only the latest timer can advance the slide, so rotation never doubles up
	for g := gen - 3; g <= gen; g++ {
		h, _, _ = h.Update(HeroTickMsg{Gen: g})
	}
	assert.Equal(t, 1, h.Active())
	assert.True(t, h.Playing())
}

func TestHero_StopIgnoresPendingTick(t *testing.T) {
	h := loadedHero(t, 3)
	gen := h.gen
	h.Stop()

	h, _, _ = h.Update(HeroTickMsg{Gen: gen})
	assert.Equal(t, 0, h.Active())
	assert.False(t, h.Playing())
}

func TestHero_HoverStopsAndLeaveStarts(t *testing.T) {
	h := loadedHero(t, 3)

	assert.Nil(t, h.Hover(true))
	assert.False(t, h.Playing())
	assert.Nil(t, h.Hover(true), "repeated motion inside is a no-op")

	assert.NotNil(t, h.Hover(false))
	assert.True(t, h.Playing())
}

func TestHero_ArrowKeysNavigateAndRestart(t *testing.T) {
	h := loadedHero(t, 3)
	h.Stop()

	h, _, handled := h.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, handled, "unfocused hero ignores keys")
	assert.Equal(t, 0, h.Active())

	h.Focus()
	h, cmd, handled := h.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, h.Active())
	assert.True(t, h.Playing())

	h, _, _ = h.Update(tea.KeyMsg{Type: tea.KeyLeft})
	h, _, _ = h.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, h.Active())
}

func TestHero_ActionsReadActiveSlide(t *testing.T) {
	h := loadedHero(t, 3)
	h.Focus()

	// advance after the bindings were created; actions must follow
	h.Show(2)
	_, cmd, _ := h.Update(runeKey("i"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenDetailsMsg{Kind: domain.KindMovie, ID: 3}, cmd())

	h.Next()
	_, cmd, _ = h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(PlayRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, msg.Item.ID)
}

func TestHero_PlaceholderActionsAreSilent(t *testing.T) {
	h := NewHero(time.Second)
	h.Load([]domain.MediaItem{{Title: "Bienvenue"}})
	h.Focus()

	_, cmd, handled := h.Update(runeKey("i"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
}

func TestHero_DotClick(t *testing.T) {
	h := loadedHero(t, 4)
	h.Stop()

	cmd := h.Click(4+2*3, heroDotsLine)
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, h.Active())
	assert.True(t, h.Playing())

	h.Click(2, heroDotsLine)
	assert.Equal(t, 2, h.Active())

	h.Click(4+2*4, heroDotsLine)
	assert.Equal(t, 3, h.Active())
}

func TestHero_OverviewTruncation(t *testing.T) {
	short := strings.Repeat("a", 220)
	assert.Equal(t, short, TruncateOverview(short))

	long := strings.Repeat("é", 221)
	got := TruncateOverview(long)
	assert.Equal(t, 218, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestHero_ViewHeight(t *testing.T) {
	h := loadedHero(t, 3)
	h.SetSize(80)
	assert.Len(t, strings.Split(h.View(), "\n"), HeroHeight)
}
