// Command omen is the command-line client: it sends symbol queries to the
// backend and keeps history, favorites, recent searches, settings and the
// signed-in user in a local SQLite file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	backendURL string
	dbPath     string

	// Logger
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "omen",
	Short: "Omen - interpret symbols, signs and omens",
	Long: `Omen asks a spiritual symbologist model what a symbol means, from
indigenous, cultural and psychological perspectives, and keeps your history
and favorites locally.

Example:
  omen search owl
  omen search "black cat crossing" --lat 51.5 --lon -0.12`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend endpoint (or set OMEN_BACKEND_URL)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Local database file (or set OMEN_DB_PATH)")

	// Search
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "Latitude to ground regional folklore")
	searchCmd.Flags().Float64Var(&searchLon, "lon", 0, "Longitude to ground regional folklore")
	searchCmd.MarkFlagsRequiredTogether("lat", "lon")

	// Collections
	historyCmd.AddCommand(historyClearCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd, favoritesClearCmd)
	recentCmd.AddCommand(recentClearCmd)

	// Settings
	settingsSetCmd.Flags().BoolVar(&showCultural, "cultural", true, "Show the cultural interpretation")
	settingsSetCmd.Flags().BoolVar(&showPsychological, "psychological", true, "Show the psychological interpretation")
	settingsCmd.AddCommand(settingsSetCmd)

	rootCmd.AddCommand(
		searchCmd,
		historyCmd,
		favoritesCmd,
		recentCmd,
		showCmd,
		settingsCmd,
		loginCmd,
		logoutCmd,
		whoamiCmd,
		practiceCmd,
		themeCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
