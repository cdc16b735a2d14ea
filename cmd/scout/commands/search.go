package commands

import (
	"fmt"
	"path/filepath"

	"candidatescout/cmd/scout/globals"
	"candidatescout/internal/components/telemetry"
	"candidatescout/internal/flatfile"
	"candidatescout/internal/notify"
	"candidatescout/internal/scrapers/linkedin"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	searchKeywords      *[]string
	searchMinExperience *int
	searchLocation      *string
	searchCount         *int
	searchOut           *string
	searchNotify        *bool
	searchDumpHttp      *bool
)

func init() {
	searchKeywords = searchCmd.Flags().StringSliceP("keyword", "k", nil, "A keyword to search for, repeat it for more (they are ANDed).")
	searchMinExperience = searchCmd.Flags().Int("min-experience", 0, "Minimum years of experience, 0 for any. Defaults to the config.")
	searchLocation = searchCmd.Flags().String("location", "", "Where the candidates should be. Defaults to the config.")
	searchCount = searchCmd.Flags().IntP("count", "n", 0, "How many candidates to collect. Defaults to the config.")
	searchOut = searchCmd.Flags().StringP("out", "o", "", "The CSV file to export to. Defaults to the config.")
	searchNotify = searchCmd.Flags().Bool("notify", false, "Email the export to the configured recipients.")
	searchDumpHttp = searchCmd.Flags().Bool("dump-http", false, "Write every request and response to <dev_state>/http/<run id>.")
	rootCmd.AddCommand(searchCmd)
}

func searchFilter(cmd *cobra.Command, g *globals.Value) linkedin.SearchFilter {
	defaults := g.Config.Search
	filter := linkedin.SearchFilter{
		Keywords:      defaults.Keywords,
		MinExperience: defaults.MinExperience,
		Location:      defaults.Location,
		TargetCount:   defaults.Count,
	}
	if cmd.Flags().Changed("keyword") {
		filter.Keywords = *searchKeywords
	}
	if cmd.Flags().Changed("min-experience") {
		filter.MinExperience = *searchMinExperience
	}
	if cmd.Flags().Changed("location") {
		filter.Location = *searchLocation
	}
	if cmd.Flags().Changed("count") {
		filter.TargetCount = *searchCount
	}
	return filter
}

var searchCmd = &cobra.Command{
	Use:   "search --keyword <keyword>... [--min-experience <years>] [--location <location>] [--count <n>]",
	Short: "Logs in, searches for candidates, stores them and exports them to CSV.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)
		cfg := g.Config
		runID := uuid.NewString()
		tel := telemetry.NewScopedAPI(fmt.Sprintf("search %s", runID[:8]), g.Tel)

		filter := searchFilter(cmd, g)
		if len(filter.Keywords) == 0 {
			fatal(g, "nothing to search for", fmt.Errorf("specify at least one --keyword or search.keywords in the config"))
		}
		if cfg.Email == "" || cfg.Password == "" {
			fatal(g, "missing credentials", fmt.Errorf("set email and password in the config or LINKEDIN_EMAIL and LINKEDIN_PASSWORD"))
		}

		store, database := openStore(g)
		defer database.Close()

		var output telemetry.InstrumentOutput
		if *searchDumpHttp {
			fsOutput, err := telemetry.NewFilesystemOutput(resolvePath(g, filepath.Join("<dev_state>", "http", runID)))
			if err != nil {
				fatal(g, "failed to create http dump directory", err)
			}
			output = fsOutput
		}

		session, err := linkedin.NewSession(linkedin.Options{
			BaseUrl:           cfg.BaseUrl,
			UserAgent:         cfg.UserAgent,
			Proxies:           cfg.Proxies,
			CloudflareBypass:  cfg.CloudflareBypass,
			RequestsPerSecond: cfg.RequestsPerSecond,
			Output:            output,
		}, g.Time, tel)
		if err != nil {
			fatal(g, "failed to create session", err)
		}

		g.Logger.Info("logging in", "run", runID, "email", cfg.Email)
		err = session.Login(ctx, linkedin.Credentials{
			Email:    cfg.Email,
			Password: cfg.Password,
		}, cfg.MaxLoginAttempts)
		if err != nil {
			fatal(g, "failed to login", err)
		}

		g.Logger.Info(
			"searching",
			"run", runID,
			"keywords", filter.Keywords,
			"min_experience", filter.MinExperience,
			"location", filter.Location,
			"count", filter.TargetCount,
		)
		result := session.Search(ctx, filter, store, nil)

		out := cfg.ExportPath
		if *searchOut != "" {
			out = *searchOut
		}
		out = resolvePath(g, out)
		err = flatfile.Write(out, result.Candidates)
		if err != nil {
			fatal(g, "failed to export candidates", err)
		}

		reason := ""
		if result.Reason != nil {
			reason = result.Reason.Error()
		}
		switch result.Status {
		case linkedin.SearchComplete:
			g.Logger.Info("search complete", "run", runID, "candidates", len(result.Candidates), "pages", result.Pages, "out", out)
		case linkedin.SearchPartial:
			g.Logger.Warn("search stopped early, exported partial results", "run", runID, "candidates", len(result.Candidates), "reason", reason, "out", out)
		case linkedin.SearchFailed:
			fatal(g, "search failed, exported the candidates stored so far", result.Reason)
		}

		if *searchNotify {
			notifier := notify.NewNotifier(notify.Options{
				Smtp:       cfg.Notify.Smtp,
				Recipients: cfg.Notify.Recipients,
			}, tel)
			if !notifier.Enabled() {
				g.Logger.Warn("--notify was given but no smtp server or recipients are configured")
				return
			}
			err = notifier.Send(ctx, notify.Summary{
				RunID:    runID,
				Keywords: filter.Keywords,
				Location: filter.Location,
				Status:   result.Status.String(),
				Count:    len(result.Candidates),
				Reason:   reason,
			}, out)
			if err != nil {
				g.Logger.Warn("failed to send notification", "err", err)
			}
		}
	},
}
