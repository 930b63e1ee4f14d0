package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/harshadayini/The-Second-Mind/internal/agent"
	"github.com/harshadayini/The-Second-Mind/internal/browser"
	"github.com/harshadayini/The-Second-Mind/internal/config"
	"github.com/harshadayini/The-Second-Mind/internal/memory"
	"github.com/harshadayini/The-Second-Mind/internal/report"
	"github.com/harshadayini/The-Second-Mind/internal/tui"
	"github.com/harshadayini/The-Second-Mind/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagTUI    bool
	flagOpen   bool
	flagWidth  int
)

var rootCmd = &cobra.Command{
	Use:   "secondmind <query>",
	Short: "Aggregate web search, NASA APOD and arXiv data for one query",
	Long: `secondmind answers a research query from three external sources: a web
search summary (or the NASA picture of the day for space queries) plus
recent arXiv papers. Results are cached per query for the process
lifetime; every fetch is logged to a local memory store.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "browse papers interactively")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "open the top paper link in the browser")
	rootCmd.Flags().IntVar(&flagWidth, "width", 100, "output width for the digest")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(artifactsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pruneCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("query is required (e.g. secondmind \"latest asteroid discovery\")")
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := memory.Open(config.MemoryPath())
	if err != nil {
		return fmt.Errorf("opening memory store: %w", err)
	}
	defer store.Close()

	ag := agent.New(cfg, store)

	if flagTUI {
		return tui.Run(tui.RunOpts{Agent: ag, Query: query})
	}

	res := ag.FetchExternalData(context.Background(), query)
	digest := report.Build(query, res)
	fmt.Print(digest.Render(flagWidth))

	if flagOpen && len(res.RecentAdvancements) > 0 {
		if err := browser.Open(res.RecentAdvancements[0].Link); err != nil {
			fmt.Printf("  [warn] %v\n", err)
		}
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("secondmind %s (commit: %s, built: %s)\n", version, commit, date)
		if r := update.Check(cmd.Context(), version); r != nil {
			fmt.Printf("A newer version is available: %s\n", r.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
