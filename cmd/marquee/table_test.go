package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable_PadsShortRows(t *testing.T) {
	out := renderTable([]string{"ID", "Titre"}, [][]string{{"603"}, {"604", "Matrix Reloaded"}}, []columnAlignment{alignRight})
	assert.Contains(t, out, "603")
	assert.Contains(t, out, "Matrix Reloaded")
	assert.Equal(t, "", renderTable(nil, nil, nil))
}

func TestPrintSection(t *testing.T) {
	var buf bytes.Buffer
	printSection(&buf, domain.Section{Title: "Séries populaires", Items: []domain.MediaItem{
		{ID: 1399, Kind: domain.KindTV, Title: "Game of Thrones", ReleaseYear: "2011", Rating: 8.46},
	}})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Séries populaires\n"))
	assert.Contains(t, out, "Série")
	assert.Contains(t, out, "8.5 ★")

	buf.Reset()
	printSection(&buf, domain.Section{Title: "Résultats pour “zz”"})
	assert.Contains(t, buf.String(), "Aucun résultat.")
}

type prefixImages string

func (p prefixImages) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return string(p) + "/" + size + path
}

func TestPrintDetails_FallbackOverview(t *testing.T) {
	var buf bytes.Buffer
	printDetails(&buf, &domain.Details{
		MediaItem: domain.MediaItem{ID: 603, Kind: domain.KindMovie, Title: "Matrix", ReleaseYear: "1999"},
		Runtime:   136,
		Videos:    []domain.Video{{Site: "YouTube", Type: "Trailer", Key: "abc"}},
	}, prefixImages("https://img"))
	out := buf.String()
	assert.Contains(t, out, "Matrix\n1999")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=abc")
	assert.Contains(t, out, "Pas de résumé disponible en français.")
	assert.NotContains(t, out, "Affiche")
}

func TestPrintDetails_Artwork(t *testing.T) {
	var buf bytes.Buffer
	printDetails(&buf, &domain.Details{
		MediaItem: domain.MediaItem{
			ID: 603, Kind: domain.KindMovie, Title: "Matrix",
			PosterPath: "/p.jpg", BackdropPath: "/b.jpg",
		},
	}, prefixImages("https://img"))
	out := buf.String()
	assert.Contains(t, out, "Affiche : https://img/w342/p.jpg")
	assert.Contains(t, out, "Fond : https://img/w1280/b.jpg")
}
