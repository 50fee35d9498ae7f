package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoTrailer is returned when asked to open an empty trailer URL
var ErrNoTrailer = errors.New("no trailer available")

// TrailerLauncher opens trailer URLs in an external player or the system browser
type TrailerLauncher struct {
	command string   // configured player command, empty for auto-detection
	args    []string // additional arguments for the player
	logger  *slog.Logger

	// process seams, replaced in tests
	lookPath func(file string) (string, error)
	start    func(name string, args ...string) error
}

// streamPlayers can resolve web video pages themselves (mpv via yt-dlp, vlc via its lua scripts)
var streamPlayers = map[string][]string{
	"darwin":  {"mpv", "vlc"},
	"linux":   {"mpv", "celluloid", "vlc"},
	"windows": {"mpv", "vlc"},
}

// NewTrailerLauncher creates a launcher. An empty command tries known players before the browser.
func NewTrailerLauncher(command string, args []string, logger *slog.Logger) *TrailerLauncher {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrailerLauncher{
		command:  strings.TrimSpace(command),
		args:     args,
		logger:   logger,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Launch opens url without waiting for the player to exit
func (l *TrailerLauncher) Launch(url string) error {
	if url == "" {
		return ErrNoTrailer
	}

	// Tier 1: configured player
	if l.command != "" {
		if _, err := l.lookPath(l.command); err == nil {
			args := append(append([]string{}, l.args...), url)
			l.logger.Info("launching trailer", "command", l.command, "args", args)
			return l.start(l.command, args...)
		}
		l.logger.Warn("configured player not found", "command", l.command)
	}

	// Tier 2: first stream-capable player on PATH
	candidates, ok := streamPlayers[runtime.GOOS]
	if !ok {
		candidates = streamPlayers["linux"]
	}
	for _, name := range candidates {
		if name == l.command {
			continue
		}
		if _, err := l.lookPath(name); err != nil {
			l.logger.Debug("player not available", "player", name)
			continue
		}
		if err := l.start(name, url); err == nil {
			l.logger.Info("launched trailer with detected player", "player", name)
			return nil
		}
	}

	// Tier 3: system default handler
	return l.launchDefault(url)
}

// launchDefault opens the URL using the system default handler
func (l *TrailerLauncher) launchDefault(url string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name, args = "open", []string{url}
	case "windows":
		name, args = "cmd", []string{"/c", "start", "", url}
	default:
		name, args = "xdg-open", []string{url}
	}

	l.logger.Info("launching trailer with system default", "os", runtime.GOOS, "url", url)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
