package components

import "github.com/charmbracelet/bubbles/key"

// CarouselKeyMap defines key bindings for a focused row
type CarouselKeyMap struct {
	PagePrev key.Binding
	PageNext key.Binding
	CardPrev key.Binding
	CardNext key.Binding
	Open     key.Binding
}

// DefaultCarouselKeyMap returns the default row key bindings
func DefaultCarouselKeyMap() CarouselKeyMap {
	return CarouselKeyMap{
		PagePrev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "page back"),
		),
		PageNext: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "page forward"),
		),
		CardPrev: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "previous card"),
		),
		CardNext: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next card"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
	}
}

// HeroKeyMap defines key bindings for the focused hero.
// Each action has exactly one binding that reads the active slide when pressed.
type HeroKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Play     key.Binding
	MoreInfo key.Binding
}

// DefaultHeroKeyMap returns the default hero key bindings
func DefaultHeroKeyMap() HeroKeyMap {
	return HeroKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next slide"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "play"),
		),
		MoreInfo: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "more info"),
		),
	}
}

// SearchKeyMap defines key bindings for the focused search input
type SearchKeyMap struct {
	Submit key.Binding
	Blur   key.Binding
}

// DefaultSearchKeyMap returns the default search key bindings
func DefaultSearchKeyMap() SearchKeyMap {
	return SearchKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
	}
}

// DetailKeyMap defines key bindings for the detail overlay
type DetailKeyMap struct {
	Close   key.Binding
	Trailer key.Binding
}

// DefaultDetailKeyMap returns the default detail overlay key bindings
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
		Trailer: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "trailer"),
		),
	}
}

// FilterKeyMap defines key bindings for the local filter
type FilterKeyMap struct {
	Escape key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultFilterKeyMap returns the default filter key bindings
func DefaultFilterKeyMap() FilterKeyMap {
	return FilterKeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
	}
}
