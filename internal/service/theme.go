package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
)

// ThemeService holds the active theme and persists every change
type ThemeService struct {
	store  domain.PreferenceStore
	logger *slog.Logger

	mu      sync.Mutex
	current domain.Theme
}

// NewThemeService reads the saved theme once. Missing or unknown values start on dark.
func NewThemeService(store domain.PreferenceStore, logger *slog.Logger) *ThemeService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ThemeService{store: store, logger: logger, current: domain.ThemeDark}
	if store == nil {
		return s
	}
	if saved, ok := store.GetPreference(domain.ThemePreferenceKey); ok {
		t, known := domain.ParseTheme(saved)
		if !known {
			logger.Warn("ignoring unknown saved theme", "theme", saved)
		}
		s.current = t
	}
	return s
}

// Current returns the active theme
func (s *ThemeService) Current() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Toggle advances to the next theme and persists it
func (s *ThemeService) Toggle() (domain.Theme, error) {
	s.mu.Lock()
	next := s.current.Next()
	s.current = next
	s.mu.Unlock()
	return next, s.save(next)
}

// Set activates t and persists it. The theme stays active even if saving fails.
func (s *ThemeService) Set(t domain.Theme) error {
	if _, ok := domain.ParseTheme(string(t)); !ok {
		return &domain.MalformedInputError{Field: "theme", Reason: fmt.Sprintf("unknown theme %q", t)}
	}

	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return s.save(t)
}

// Reset forgets the saved theme and returns to dark
func (s *ThemeService) Reset() error {
	s.mu.Lock()
	s.current = domain.ThemeDark
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.DeletePreference(domain.ThemePreferenceKey); err != nil {
		s.logger.Error("failed to reset theme", "error", err)
		return err
	}
	s.logger.Debug("theme preference cleared")
	return nil
}

// save persists t
func (s *ThemeService) save(t domain.Theme) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SetPreference(domain.ThemePreferenceKey, string(t)); err != nil {
		s.logger.Error("failed to save theme", "theme", t, "error", err)
		return err
	}
	s.logger.Debug("theme saved", "theme", t)
	return nil
}
