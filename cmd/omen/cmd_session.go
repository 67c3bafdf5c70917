package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakif/omen/internal/model"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in (local mock account)",
	Long: `Signs in as the local mock account. History, favorites and recent
searches switch to that account's own partition; guest data stays where it is.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		return withApp(ctx, func(a *app) error {
			user, err := a.session.SignIn(ctx)
			if err != nil {
				return err
			}
			a.switchUser(ctx, user)

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", user.Name)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and return to the guest partition",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		return withApp(ctx, func(a *app) error {
			if err := a.session.SignOut(ctx); err != nil {
				return err
			}
			a.switchUser(ctx, nil)

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmdContext(cmd), func(a *app) error {
			renderUser(cmd.OutOrStdout(), a.user)
			return nil
		})
	},
}

var practiceCmd = &cobra.Command{
	Use:   "practice [name...]",
	Short: "Set your spiritual practice",
	Long:  "Sets the spiritual practice used to tailor interpretations. Requires sign-in.\n\nPractices: " + practiceNames(),
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPractice,
}

func runPractice(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)

	return withApp(ctx, func(a *app) error {
		user, err := a.session.UpdateSpiritualPractice(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Sign in first to set a spiritual practice.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Spiritual practice set to %s.\n", user.SpiritualPractice)
		return nil
	})
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|system|toggle]",
	Short:     "Show or change the theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "system", "toggle"},
	RunE:      runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)

	return withApp(ctx, func(a *app) error {
		var theme model.Theme
		switch {
		case len(args) == 0:
			theme = a.session.Theme(ctx)
		case args[0] == "toggle":
			next, err := a.session.ToggleTheme(ctx)
			if err != nil {
				return err
			}
			theme = next
		default:
			theme = model.Theme(strings.ToLower(args[0]))
			if err := a.session.SetTheme(ctx, theme); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
		return nil
	})
}

func practiceNames() string {
	names := make([]string, len(model.SpiritualPractices))
	for i, p := range model.SpiritualPractices {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
