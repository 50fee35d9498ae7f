package service

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeService_CyclesAndPersists(t *testing.T) {
	prefs, err := store.NewPreferenceStore("")
	require.NoError(t, err)

	svc := NewThemeService(prefs, adapter.NullLogger())
	assert.Equal(t, domain.ThemeDark, svc.Current())

	for _, want := range []domain.Theme{domain.ThemeLight, domain.ThemeSepia, domain.ThemeDark} {
		got, err := svc.Toggle()
		require.NoError(t, err)
		assert.Equal(t, want, got)

		saved, ok := prefs.GetPreference(domain.ThemePreferenceKey)
		require.True(t, ok)
		assert.Equal(t, string(want), saved)
	}
}

func TestThemeService_ConcurrentTogglesAllCount(t *testing.T) {
	prefs, err := store.NewPreferenceStore("")
	require.NoError(t, err)
	svc := NewThemeService(prefs, adapter.NullLogger())

	var wg sync.WaitGroup
	for i := 0; i < len(domain.Themes)+1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Toggle()
		}()
	}
	wg.Wait()

	// one step past a full cycle
	assert.Equal(t, domain.ThemeLight, svc.Current())
}

func TestThemeService_RestoresFromBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	prefs, err := store.NewPreferenceStore(path)
	require.NoError(t, err)
	_, err = NewThemeService(prefs, adapter.NullLogger()).Toggle()
	require.NoError(t, err)
	require.NoError(t, prefs.Close())

	reopened, err := store.NewPreferenceStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, domain.ThemeLight, NewThemeService(reopened, adapter.NullLogger()).Current())
}

func TestThemeService_UnknownSavedValue(t *testing.T) {
	prefs, err := store.NewPreferenceStore("")
	require.NoError(t, err)
	require.NoError(t, prefs.SetPreference(domain.ThemePreferenceKey, "neon"))

	assert.Equal(t, domain.ThemeDark, NewThemeService(prefs, adapter.NullLogger()).Current())
}

func TestThemeService_ResetForgetsSavedTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	prefs, err := store.NewPreferenceStore(path)
	require.NoError(t, err)
	svc := NewThemeService(prefs, adapter.NullLogger())
	require.NoError(t, svc.Set(domain.ThemeSepia))

	require.NoError(t, svc.Reset())
	assert.Equal(t, domain.ThemeDark, svc.Current())
	require.NoError(t, prefs.Close())

	reopened, err := store.NewPreferenceStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	_, ok := reopened.GetPreference(domain.ThemePreferenceKey)
	assert.False(t, ok)
	assert.Equal(t, domain.ThemeDark, NewThemeService(reopened, adapter.NullLogger()).Current())
}

func TestThemeService_SetRejectsUnknown(t *testing.T) {
	svc := NewThemeService(nil, adapter.NullLogger())
	assert.Error(t, svc.Set("neon"))
	require.NoError(t, svc.Set(domain.ThemeSepia))
	assert.Equal(t, domain.ThemeSepia, svc.Current())
}
