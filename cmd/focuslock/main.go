package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"focuslock/internal/bootstrap"
	settingsdto "focuslock/internal/modules/settings/dto"
	"focuslock/internal/platform/config"
	"focuslock/internal/platform/id"
	"focuslock/internal/platform/logging"
)

type globalFlags struct {
	configDir string
	store     string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "focuslock",
		Short:         "Lock distracting pages behind a short typing task",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", config.DefaultDir(), "settings directory")
	root.PersistentFlags().StringVar(&flags.store, "store", config.StoreYAML, "settings store: yaml|sqlite")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newLockCmd(flags))
	root.AddCommand(newSettingsCmd(flags))
	root.AddCommand(newServeCmd(flags))
	return root
}

func loadApp(flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.configDir, flags.store)
	if err != nil {
		return nil, err
	}
	cfg.Verbose = flags.verbose
	return bootstrap.New(cfg, logging.New(os.Stderr, cfg.Verbose))
}

// withApp builds the app, runs fn and releases the app afterwards.
func withApp(flags *globalFlags, fn func(*bootstrap.App) error) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check <url|file>",
		Short: "Classify a page without locking it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.ClassifierCLI.Check(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), out)
				}
				w := cmd.OutOrStdout()
				verdict := "not study related"
				if out.StudyRelated {
					verdict = "study related"
				}
				_, _ = fmt.Fprintf(w, "%s: %s\n", out.Snapshot.URL, verdict)
				_, _ = fmt.Fprintf(w, "title: %s\n", out.Snapshot.Title)
				if len(out.Matches) > 0 {
					_, _ = fmt.Fprintf(w, "matches: %s\n", strings.Join(out.Matches, ", "))
				}
				_, _ = fmt.Fprintf(w, "keywords checked: %d\n", out.KeywordCount)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newLockCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lock <url|file>",
		Short: "Open a page and show the blocking overlay if it is distracting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return withApp(flags, func(app *bootstrap.App) error {
				result, err := bootstrap.RunLock(ctx, app, id.UUID{}.New(), args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				switch {
				case !result.Evaluation.Enabled:
					_, _ = fmt.Fprintln(w, "focus lock is disabled")
				case result.Evaluation.StudyRelated:
					_, _ = fmt.Fprintf(w, "study related (%s): page stays unlocked\n", strings.Join(result.Evaluation.Matches, ", "))
				case result.Outcome == "closed":
					_, _ = fmt.Fprintln(w, "page closed while locked")
				default:
					_, _ = fmt.Fprintln(w, "page unlocked")
				}
				return nil
			})
		},
	}
}

func newSettingsCmd(flags *globalFlags) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show and change focus lock settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.SettingsCLI.Show(cmd.Context())
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	for _, toggle := range []struct {
		use     string
		enabled bool
	}{{"enable", true}, {"disable", false}} {
		settings.AddCommand(&cobra.Command{
			Use:   toggle.use,
			Short: strings.ToUpper(toggle.use[:1]) + toggle.use[1:] + " focus lock",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(flags, func(app *bootstrap.App) error {
					out, err := app.SettingsCLI.SetEnabled(cmd.Context(), toggle.enabled)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "enabled: %t\n", out.Enabled)
					return nil
				})
			},
		})
	}

	settings.AddCommand(&cobra.Command{
		Use:   "duration <minutes>",
		Short: "Set the lock duration (1-60 minutes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("minutes must be a whole number: %w", err)
			}
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.SettingsCLI.SetLockDuration(cmd.Context(), minutes)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "lock duration: %d minutes\n", out.LockDuration)
				return nil
			})
		},
	})

	keyword := &cobra.Command{Use: "keyword", Short: "Manage study keywords"}
	keyword.AddCommand(&cobra.Command{
		Use:   "add <category> <keyword>",
		Short: "Add a study keyword to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.SettingsCLI.AddKeyword(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %q to %s\n", out.Keyword, out.Category)
				return nil
			})
		},
	})
	keyword.AddCommand(&cobra.Command{
		Use:   "remove <category> <keyword>",
		Short: "Remove a study keyword from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if _, err := app.SettingsCLI.RemoveKeyword(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %q from %s\n", strings.ToLower(strings.TrimSpace(args[1])), args[0])
				return nil
			})
		},
	})
	settings.AddCommand(keyword)

	settings.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.SettingsCLI.RestoreDefaults(cmd.Context())
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})
	return settings
}

func newServeCmd(flags *globalFlags) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP bridge for the browser extension",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return withApp(flags, func(app *bootstrap.App) error {
				return app.Serve(ctx, listen)
			})
		},
	}
	cmd.Flags().StringVar(&listen, "listen", config.DefaultListenAddr, "listen address")
	return cmd
}

func printSettings(w io.Writer, out settingsdto.SettingsOutput) {
	_, _ = fmt.Fprintf(w, "enabled: %t\n", out.Enabled)
	_, _ = fmt.Fprintf(w, "lock duration: %d minutes\n", out.LockDuration)
	_, _ = fmt.Fprintln(w, "study keywords:")
	for _, category := range out.Categories {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", category, strings.Join(out.StudyKeywords[category], ", "))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
