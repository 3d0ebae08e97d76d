package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"kinonote/internal/kinopoisk"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		limit int
		page  int
	)

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search the catalog by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			bundle, err := ctx.messages()
			if err != nil {
				return err
			}

			searchCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if limit <= 0 {
				limit = cfg.Kinopoisk.SearchLimit
			}
			resp, err := client.SearchByName(searchCtx, query, kinopoisk.SearchOptions{Limit: limit, Page: page})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(resp.Docs) == 0 {
				fmt.Fprintln(out, bundle.LookupParams("search.noResults", map[string]string{"query": query}))
				return nil
			}

			rows := make([][]string, 0, len(resp.Docs))
			for _, doc := range resp.Docs {
				rows = append(rows, []string{
					strconv.FormatInt(doc.ID, 10),
					bundle.MediaTypeLabel(doc.Type),
					searchTitle(doc),
					searchYear(doc),
					searchRating(doc),
				})
			}
			fmt.Fprintln(out, renderSearchTable(rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results (defaults to search_limit from the config)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Result page to fetch")
	return cmd
}

func searchTitle(doc kinopoisk.Movie) string {
	for _, name := range []string{doc.Name, doc.AlternativeName, doc.EnName} {
		if strings.TrimSpace(name) != "" {
			return name
		}
	}
	return "-"
}

func searchYear(doc kinopoisk.Movie) string {
	if doc.Year <= 0 {
		return "-"
	}
	return strconv.Itoa(doc.Year)
}

func searchRating(doc kinopoisk.Movie) string {
	if doc.Rating == nil || doc.Rating.KP <= 0 {
		return "-"
	}
	return strconv.FormatFloat(doc.Rating.KP, 'f', 1, 64)
}
