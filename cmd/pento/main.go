package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pento/internal/bootstrap"
	billingdto "pento/internal/modules/billing/dto"
	journaldto "pento/internal/modules/journal/dto"
	"pento/internal/platform/config"
	"pento/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vaultPath string
	var debug bool

	root := &cobra.Command{
		Use:           "pento",
		Short:         "Daily writing dojo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&vaultPath, "vault", ".", "writing vault path")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	root.AddCommand(newTUICmd(&vaultPath, &debug))
	root.AddCommand(newSenseiCmd(&vaultPath, &debug))
	root.AddCommand(newModeCmd(&vaultPath, &debug))
	root.AddCommand(newPromptCmd(&vaultPath, &debug))
	root.AddCommand(newSessionCmd(&vaultPath, &debug))
	root.AddCommand(newStatsCmd(&vaultPath, &debug))
	root.AddCommand(newHistoryCmd(&vaultPath, &debug))
	root.AddCommand(newAchievementsCmd(&vaultPath, &debug))
	root.AddCommand(newPlanCmd(&vaultPath, &debug))
	root.AddCommand(newBillingCmd(&vaultPath, &debug))
	root.AddCommand(newReindexCmd(&vaultPath, &debug))
	root.AddCommand(newResetCmd(&vaultPath, &debug))
	return root
}

func loadApp(vaultPath string, debug bool) (*bootstrap.App, error) {
	cfg, err := config.New(vaultPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(debug))
}

func newTUICmd(vaultPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run pento terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*vaultPath, app)
		},
	}
}

func newSenseiCmd(vaultPath *string, debug *bool) *cobra.Command {
	sensei := &cobra.Command{Use: "sensei", Short: "Writing sensei commands"}

	sensei.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available senseis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			senseis, err := app.CatalogCLI.ListSenseis(context.Background())
			if err != nil {
				return err
			}
			for _, s := range senseis {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s (%s)\tprompts=%d\n", s.ID, s.Name, s.Kanji, s.Meaning, s.PromptCount)
			}
			return nil
		},
	})

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a sensei's philosophy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			s, err := app.CatalogCLI.GetSensei(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n%s\n\nsample prompt: %s\n", s.Name, s.Kanji, s.Meaning, s.Philosophy, s.SamplePrompt)
			return nil
		},
	}
	sensei.AddCommand(show)
	return sensei
}

func newModeCmd(vaultPath *string, debug *bool) *cobra.Command {
	mode := &cobra.Command{Use: "mode", Short: "Writing mode commands"}

	var senseiID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List writing modes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			modes, err := app.CatalogCLI.ListModes(context.Background(), senseiID)
			if err != nil {
				return err
			}
			for _, m := range modes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s", m.ID, m.Name, m.Description)
				if m.SenseiRestriction != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\t(%s only)", m.SenseiRestriction)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	list.Flags().StringVar(&senseiID, "sensei", "", "only modes available to this sensei")
	mode.AddCommand(list)
	return mode
}

func newPromptCmd(vaultPath *string, debug *bool) *cobra.Command {
	var senseiID, modeID string
	prompt := &cobra.Command{
		Use:   "prompt --sensei <id>",
		Short: "Draw a random prompt without starting a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(senseiID) == "" {
				return fmt.Errorf("--sensei is required")
			}
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.RandomPrompt(context.Background(), senseiID, modeID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
	prompt.Flags().StringVar(&senseiID, "sensei", "", "sensei id")
	prompt.Flags().StringVar(&modeID, "mode", "", "writing mode id")
	return prompt
}

func newSessionCmd(vaultPath *string, debug *bool) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Writing session lifecycle"}

	var senseiID, modeID string
	start := &cobra.Command{
		Use:   "start --sensei <id>",
		Short: "Start a writing session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(senseiID) == "" {
				return fmt.Errorf("--sensei is required")
			}
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Start(context.Background(), journaldto.StartInput{SenseiID: senseiID, ModeID: modeID})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started: %s sensei=%s\n", out.SessionID, out.SenseiID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "prompt: %s\n", out.PromptText)
			if out.Remaining >= 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "free sessions remaining: %d\n", out.Remaining)
			}
			return nil
		},
	}
	start.Flags().StringVar(&senseiID, "sensei", "", "sensei id")
	start.Flags().StringVar(&modeID, "mode", "", "writing mode id")
	session.AddCommand(start)

	var file string
	write := &cobra.Command{
		Use:   "write [text]",
		Short: "Replace the draft body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args, file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Write(context.Background(), content)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "draft saved: %d words\n", out.WordCount)
			return nil
		},
	}
	write.Flags().StringVar(&file, "file", "", "read content from file, - for stdin")
	session.AddCommand(write)

	var completeFile string
	complete := &cobra.Command{
		Use:   "complete [text]",
		Short: "Complete the session and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ""
			if len(args) == 1 || completeFile != "" {
				var err error
				content, err = readContent(args, completeFile, cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Complete(context.Background(), journaldto.CompleteInput{Content: content})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session complete: %d words in %s\n", out.WordCount, (time.Duration(out.DurationSec) * time.Second).String())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak: %d day(s), total %d sessions\n", out.Stats.CurrentStreak, out.Stats.TotalSessions)
			if out.NotePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note: %s\n", out.NotePath)
			}
			for _, id := range out.NewAchievements {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "achievement unlocked: %s\n", id)
			}
			if out.Remaining >= 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "free sessions remaining: %d\n", out.Remaining)
			}
			return nil
		},
	}
	complete.Flags().StringVar(&completeFile, "file", "", "read content from file, - for stdin")
	session.AddCommand(complete)

	session.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the in-progress draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session=%s sensei=%s words=%d started=%s\n", out.SessionID, out.SenseiID, out.WordCount, out.StartedAt.Format(time.RFC3339))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "prompt: %s\n", out.PromptText)
			if strings.TrimSpace(out.Content) != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
			}
			return nil
		},
	})

	session.AddCommand(&cobra.Command{
		Use:   "discard",
		Short: "Throw away the in-progress draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Discard(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "draft discarded")
			return nil
		},
	})
	return session
}

func readContent(args []string, file string, stdin io.Reader) (string, error) {
	if file == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(raw), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide text, --file, or --file -")
}

func newStatsCmd(vaultPath *string, debug *bool) *cobra.Command {
	var detail bool
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show writing statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if !detail {
				out, err := app.JournalCLI.Stats(context.Background())
				if err != nil {
					return err
				}
				printStats(cmd.OutOrStdout(), out)
				return nil
			}
			out, err := app.JournalCLI.StatsDetail(context.Background())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), out.Stats)
			if len(out.SenseiTotals) > 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nsessions by sensei:")
				for _, total := range out.SenseiTotals {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%d\n", total.SenseiID, total.Sessions)
				}
			}
			if len(out.RecentDays) > 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nrecent days:")
				for _, day := range out.RecentDays {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%d sessions\t%d words\n", day.Day, day.Sessions, day.Words)
				}
			}
			return nil
		},
	}
	stats.Flags().BoolVar(&detail, "detail", false, "include per-sensei and per-day breakdowns")
	return stats
}

func printStats(w io.Writer, stats journaldto.StatsOutput) {
	_, _ = fmt.Fprintf(w, "sessions: %d\nwords: %d\nminutes: %d\ncurrent streak: %d\nlongest streak: %d\n", stats.TotalSessions, stats.TotalWords, stats.TotalMinutes, stats.CurrentStreak, stats.LongestStreak)
	if stats.LastWritingDate != "" {
		_, _ = fmt.Fprintf(w, "last writing day: %s\n", stats.LastWritingDate)
	}
}

func newHistoryCmd(vaultPath *string, debug *bool) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Session history commands"}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List completed sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			sessions, err := app.JournalCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions yet")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d words\n", s.ID, s.CompletedAt.Format("2006-01-02 15:04"), s.SenseiID, s.WordCount)
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "max sessions to show (0 = all)")
	history.AddCommand(list)

	history.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one session in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			s, err := app.JournalCLI.GetSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nsensei: %s\ncompleted: %s\nwords: %d\nduration: %s\n\nprompt: %s\n\n%s\n",
				s.ID, s.SenseiID, s.CompletedAt.Format(time.RFC3339), s.WordCount, (time.Duration(s.DurationSec) * time.Second).String(), s.PromptText, s.Content)
			return nil
		},
	})

	history.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one session from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.DeleteSession(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	var confirmClear bool
	clear := &cobra.Command{
		Use:   "clear",
		Short: "Clear all session history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmClear {
				return fmt.Errorf("pass --yes to clear history")
			}
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.ClearHistory(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}
	clear.Flags().BoolVar(&confirmClear, "yes", false, "confirm")
	history.AddCommand(clear)
	return history
}

func newAchievementsCmd(vaultPath *string, debug *bool) *cobra.Command {
	achievements := &cobra.Command{Use: "achievements", Short: "Achievement commands"}

	achievements.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all achievements and their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			statuses, err := app.AchievementCLI.List(context.Background())
			if err != nil {
				return err
			}
			for _, s := range statuses {
				marker := " "
				when := ""
				if s.Unlocked {
					marker = "x"
					when = "\t" + s.UnlockedAt.Format("2006-01-02")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s\t%s%s\n", marker, s.Icon, s.Name, s.Description, when)
			}
			return nil
		},
	})

	var ack bool
	recent := &cobra.Command{
		Use:   "recent",
		Short: "Show unseen unlock notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			notifications, err := app.AchievementCLI.Recent(context.Background(), ack)
			if err != nil {
				return err
			}
			if len(notifications) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing new")
				return nil
			}
			for _, n := range notifications {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", n.Icon, n.Name, n.UnlockedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	recent.Flags().BoolVar(&ack, "ack", false, "mark notifications as seen")
	achievements.AddCommand(recent)
	return achievements
}

func newPlanCmd(vaultPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the current subscription plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			plan, err := app.BillingCLI.Plan()
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
}

func printPlan(w io.Writer, plan billingdto.PlanOutput) {
	_, _ = fmt.Fprintf(w, "plan: %s\n", plan.Status)
	if plan.Remaining >= 0 {
		_, _ = fmt.Fprintf(w, "sessions used: %d\nremaining: %d\n", plan.SessionsUsed, plan.Remaining)
	}
	if plan.SubscriptionID != "" {
		_, _ = fmt.Fprintf(w, "subscription: %s\n", plan.SubscriptionID)
	}
	if plan.CurrentPeriodEnd > 0 {
		_, _ = fmt.Fprintf(w, "period end: %s\n", time.Unix(plan.CurrentPeriodEnd, 0).Format("2006-01-02"))
	}
}

func newBillingCmd(vaultPath *string, debug *bool) *cobra.Command {
	billing := &cobra.Command{Use: "billing", Short: "Subscription and billing provider commands"}

	billing.AddCommand(&cobra.Command{
		Use:   "upgrade",
		Short: "Start a checkout with the enabled provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			out, err := app.BillingCLI.Upgrade(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "open to complete checkout: %s\n", out.URL)
			return nil
		},
	})

	billing.AddCommand(&cobra.Command{
		Use:   "cancel",
		Short: "Cancel the active subscription",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.BillingCLI.Cancel(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "subscription cancelled")
			return nil
		},
	})

	billing.AddCommand(&cobra.Command{
		Use:   "reactivate",
		Short: "Return a cancelled account to the free tier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.BillingCLI.Reactivate(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "account reactivated on the free tier")
			return nil
		},
	})

	provider := &cobra.Command{Use: "provider", Short: "Manage billing provider plugins"}

	provider.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			providers, err := app.BillingCLI.ListProviders()
			if err != nil {
				return err
			}
			if len(providers) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no providers registered")
				return nil
			}
			for _, p := range providers {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t capabilities=%s binary=%s\n", p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","), p.Binary)
			}
			return nil
		},
	})

	var name, version, binary, sha string
	var capabilities []string
	register := &cobra.Command{
		Use:   "register --name <name> --binary <path> --sha256 <hex>",
		Short: "Register a provider binary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.BillingCLI.RegisterProvider(billingdto.RegisterProviderInput{
				Name:         name,
				Version:      version,
				Binary:       binary,
				SHA256:       sha,
				Capabilities: capabilities,
			}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", name)
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "provider name")
	register.Flags().StringVar(&version, "version", "", "provider version")
	register.Flags().StringVar(&binary, "binary", "", "provider binary path")
	register.Flags().StringVar(&sha, "sha256", "", "expected binary sha256")
	register.Flags().StringSliceVar(&capabilities, "capabilities", []string{"checkout"}, "provider capabilities: checkout|portal")
	provider.AddCommand(register)

	provider.AddCommand(&cobra.Command{
		Use:   "enable <name>",
		Short: "Enable a provider (disables any other)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.BillingCLI.SetProviderEnabled(args[0], true); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "enabled %s\n", args[0])
			return nil
		},
	})

	provider.AddCommand(&cobra.Command{
		Use:   "disable <name>",
		Short: "Disable a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.BillingCLI.SetProviderEnabled(args[0], false); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "disabled %s\n", args[0])
			return nil
		},
	})

	provider.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a registered provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.BillingCLI.RemoveProvider(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})

	provider.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate provider checksums and metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			reports, err := app.BillingCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no providers registered")
				return nil
			}
			failing := false
			for _, report := range reports {
				marker := "OK"
				if !report.Healthy {
					marker = "FAIL"
					failing = true
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s\n", marker, report.Name, report.Version)
				for _, problem := range report.Problems {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", problem)
				}
			}
			if failing {
				return fmt.Errorf("provider doctor found failing checks")
			}
			return nil
		},
	})

	billing.AddCommand(provider)
	return billing
}

func newReindexCmd(vaultPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite history projection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newResetCmd(vaultPath *string, debug *bool) *cobra.Command {
	var confirm bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Wipe stats, history, draft, and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return fmt.Errorf("pass --yes to reset")
			}
			app, err := loadApp(*vaultPath, *debug)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all writing data reset")
			return nil
		},
	}
	reset.Flags().BoolVar(&confirm, "yes", false, "confirm")
	return reset
}
