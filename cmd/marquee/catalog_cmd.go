package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/mmcdole/marquee/internal/adapter/tmdb"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search films and series",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			section, err := a.catalog.Search(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			printSection(os.Stdout, section)
			return nil
		},
	}
}

func newDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <movie|tv> <id>",
		Short: "Show the full record of a film or series",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := domain.ParseMediaKind(args[0])
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			details, err := a.catalog.Details(ctx, kind, id)
			if err != nil {
				return err
			}
			printDetails(os.Stdout, details, a.catalog)
			return nil
		},
	}
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light|sepia|next|reset]",
		Short: "Show or set the saved colour theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			if len(args) == 0 {
				fmt.Println(a.themes.Current())
				return nil
			}
			switch args[0] {
			case "next":
				_, err = a.themes.Toggle()
			case "reset":
				err = a.themes.Reset()
			default:
				err = a.themes.Set(domain.Theme(args[0]))
			}
			if err != nil {
				return err
			}
			if !a.prefs.Persistent() {
				fmt.Fprintln(os.Stderr, "warning: preferences are not persisted")
			}
			fmt.Println(a.themes.Current())
			return nil
		},
	}
}

// printHome writes the three fixed sections as tables
func printHome(w io.Writer, catalog *service.CatalogService) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	for _, id := range service.FixedSections() {
		section, err := catalog.LoadSection(ctx, id)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n\n", section.Title, err)
			continue
		}
		printSection(w, section)
	}
	return nil
}

func printSection(w io.Writer, section domain.Section) {
	fmt.Fprintln(w, section.Title)
	if len(section.Items) == 0 {
		fmt.Fprintln(w, "Aucun résultat.")
		fmt.Fprintln(w)
		return
	}

	rows := make([][]string, 0, len(section.Items))
	for _, item := range section.Items {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			item.Kind.Label(),
			item.Title,
			item.YearOrDash(),
			item.FormattedRating(),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"ID", "Type", "Titre", "Année", "Note"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
	))
	fmt.Fprintln(w)
}

// imageResolver turns a relative artwork path into an absolute URL
type imageResolver interface {
	ImageURL(path, size string) string
}

func printDetails(w io.Writer, d *domain.Details, images imageResolver) {
	fmt.Fprintln(w, d.Title)
	fmt.Fprintln(w, components.Meta(*d))

	rows := [][]string{}
	for _, pill := range components.Pills(*d) {
		rows = append(rows, []string{pill})
	}
	if url := d.TrailerURL(); url != "" {
		rows = append(rows, []string{"Bande-annonce : " + url})
	}
	if url := images.ImageURL(d.PosterPath, tmdb.PosterSize); url != "" {
		rows = append(rows, []string{"Affiche : " + url})
	}
	if url := images.ImageURL(d.BackdropPath, tmdb.BackdropSize); url != "" {
		rows = append(rows, []string{"Fond : " + url})
	}
	if len(rows) > 0 {
		fmt.Fprintln(w, renderTable([]string{"Fiche"}, rows, nil))
	}

	overview := d.Overview
	if overview == "" {
		overview = components.OverviewFallback
	}
	fmt.Fprintln(w, wrap(overview, tableWidth()))
}
