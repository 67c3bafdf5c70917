package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakif/omen/internal/model"
	"github.com/sakif/omen/internal/service"
)

var (
	searchLat float64
	searchLon float64
)

// searchCmd interprets a symbol
var searchCmd = &cobra.Command{
	Use:   "search [symbol or omen...]",
	Short: "Interpret a symbol and add it to your history",
	Long: `Sends the query to the Omen backend and prints the interpretation.

The query is added to your recent searches and the result to your history.
When signed in, your spiritual practice tailors the cultural reading.
--lat and --lon ground the indigenous reading in regional folklore.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	query := strings.Join(args, " ")

	var location *model.Geolocation
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
		location = &model.Geolocation{Latitude: searchLat, Longitude: searchLon}
	}

	return withApp(ctx, func(a *app) error {
		omen, err := a.search.Search(ctx, service.Session{User: a.user, Location: location}, query)
		if omen != nil {
			renderOmen(cmd.OutOrStdout(), *omen, a.settings.Settings(), a.omens.IsFavorite(omen.Name))
		}
		return err
	})
}

// cmdContext returns the command's context, or Background when run outside
// Execute.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
