package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakif/omen/internal/service"
)

var showShare bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past omens, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmdContext(cmd), func(a *app) error {
			renderOmenList(cmd.OutOrStdout(), a.omens.PastOmens(), "No past omens yet.")
			return nil
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all past omens",
	Args:  cobra.NoArgs,
	RunE:  clearCollection(service.CollectionPastOmens, "History cleared."),
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite omens, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmdContext(cmd), func(a *app) error {
			renderOmenList(cmd.OutOrStdout(), a.omens.Favorites(), "No favorites yet.")
			return nil
		})
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle [name...]",
	Short: "Add an omen from your history to favorites, or remove it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesToggle,
}

func runFavoritesToggle(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	name := strings.Join(args, " ")

	return withApp(ctx, func(a *app) error {
		omen, err := a.omens.Find(name)
		if err != nil {
			return fmt.Errorf("no omen named %q in your history or favorites", name)
		}

		added, err := a.omens.ToggleFavorite(ctx, omen)
		if err != nil {
			return err
		}

		if added {
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", omen.Name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", omen.Name)
		}
		return nil
	})
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all favorites",
	Args:  cobra.NoArgs,
	RunE:  clearCollection(service.CollectionFavorites, "Favorites cleared."),
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent searches, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmdContext(cmd), func(a *app) error {
			renderStrings(cmd.OutOrStdout(), a.omens.RecentSearches(), "No recent searches.")
			return nil
		})
	},
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recent searches",
	Args:  cobra.NoArgs,
	RunE:  clearCollection(service.CollectionRecentSearches, "Recent searches cleared."),
}

var showCmd = &cobra.Command{
	Use:   "show [name...]",
	Short: "Show a past or favorite omen",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showShare, "share", false, "Print plain share text instead")
}

func runShow(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	return withApp(cmdContext(cmd), func(a *app) error {
		omen, err := a.omens.Find(name)
		if err != nil {
			return fmt.Errorf("no omen named %q in your history or favorites", name)
		}

		if showShare {
			fmt.Fprintln(cmd.OutOrStdout(), omen.ShareText())
			return nil
		}
		renderOmen(cmd.OutOrStdout(), omen, a.settings.Settings(), a.omens.IsFavorite(omen.Name))
		return nil
	})
}

func clearCollection(c service.Collection, done string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		return withApp(ctx, func(a *app) error {
			if err := a.omens.Clear(ctx, c); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		})
	}
}
