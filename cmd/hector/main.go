// Command hector scores an exported HTML roster (pitchers and batters),
// prints sortable, filterable player tables and per-team rollups, and builds
// profile links from player IDs.
//
// Usage:
//
//	hector pitchers --sort total --desc
//	hector batters --pos SS --pos 2B --search "atl"
//	hector teams
//	hector validate
//	hector export --out scores.json
//	hector link 12345
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ootptools/hector/internal/config"
	"github.com/ootptools/hector/internal/pipeline"
	"github.com/ootptools/hector/internal/view"
	"github.com/ootptools/hector/internal/weights"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// File-path flags override the HECTOR_* environment configuration.
var (
	flagPitchersFile   string
	flagBattersFile    string
	flagBatterWeights  string
	flagPitcherWeights string
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "hector",
		Short: "Roster scoring for OOTP-style HTML exports",
	}
	root.PersistentFlags().StringVar(&flagPitchersFile, "pitchers", "", "Pitcher export HTML file")
	root.PersistentFlags().StringVar(&flagBattersFile, "batters", "", "Batter export HTML file")
	root.PersistentFlags().StringVar(&flagBatterWeights, "batter-weights", "", "Batter weight YAML file")
	root.PersistentFlags().StringVar(&flagPitcherWeights, "pitcher-weights", "", "Pitcher weight YAML file")

	root.AddCommand(pitchersCmd())
	root.AddCommand(battersCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(linkCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// player table commands
// --------------------------------------------------------------------------

func pitchersCmd() *cobra.Command {
	var (
		search    string
		positions []string
		sortCol   string
		desc      bool
	)
	cmd := &cobra.Command{
		Use:   "pitchers",
		Short: "Score and list pitchers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(func(cfg *config.Config, result *pipeline.Result) error {
				view.SortPitchers(result.Pitchers, sortCol, desc)
				view.RenderPitchers(os.Stdout, result.Pitchers, view.Filter{
					Search:    search,
					Positions: positions,
				})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Filter by name/team/position terms (AND)")
	cmd.Flags().StringSliceVar(&positions, "pos", nil,
		fmt.Sprintf("Positions to include %v; empty = all", config.PitcherPositions))
	cmd.Flags().StringVar(&sortCol, "sort", "total", "Sort column (name, team, age, pos, prone, velo, pitches, total)")
	cmd.Flags().BoolVar(&desc, "desc", true, "Sort descending")
	return cmd
}

func battersCmd() *cobra.Command {
	var (
		search    string
		positions []string
		sortCol   string
		desc      bool
	)
	cmd := &cobra.Command{
		Use:   "batters",
		Short: "Score and list batters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(func(cfg *config.Config, result *pipeline.Result) error {
				view.SortBatters(result.Batters, sortCol, desc)
				view.RenderBatters(os.Stdout, result.Batters, view.Filter{
					Search:    search,
					Positions: positions,
				})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Filter by name/team/position terms (AND)")
	cmd.Flags().StringSliceVar(&positions, "pos", nil,
		fmt.Sprintf("Positions to include %v; empty = all", config.BatterPositions))
	cmd.Flags().StringVar(&sortCol, "sort", "total", "Sort column (name, team, age, pos, prone, offense, defense, total)")
	cmd.Flags().BoolVar(&desc, "desc", true, "Sort descending")
	return cmd
}

func teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Score everyone and print per-team rollups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(func(cfg *config.Config, result *pipeline.Result) error {
				view.RenderTeams(os.Stdout, result.Teams)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// validate / export / link commands
// --------------------------------------------------------------------------

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check both exports against the required-field contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPipeline(func(cfg *config.Config, result *pipeline.Result) error {
				fmt.Printf("Exports OK: %s\n", result.Summary())
				return nil
			})
			var missing *pipeline.MissingFieldsError
			if errors.As(err, &missing) {
				fmt.Println(missing.Report())
				os.Exit(1)
			}
			return err
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run the pipeline and write scored players and team rollups as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(func(cfg *config.Config, result *pipeline.Result) error {
				w := os.Stdout
				if out != "" {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("create output: %w", err)
					}
					defer f.Close()
					w = f
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(exportDoc(cfg, result))
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output file; empty = stdout")
	return cmd
}

func linkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <player-id>",
		Short: "Print the external profile URL for a player ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			fmt.Println(view.ProfileURL(cfg.ProfileBaseURL, args[0]))
			return nil
		},
	}
}

// exportDoc shapes a pipeline result for JSON export: each player carries
// its raw record, scores, and profile URL.
func exportDoc(cfg *config.Config, result *pipeline.Result) map[string]interface{} {
	pitchers := make([]map[string]interface{}, 0, len(result.Pitchers))
	for _, p := range result.Pitchers {
		pitchers = append(pitchers, map[string]interface{}{
			"record":      p.Record,
			"scores":      p.Scores,
			"profile_url": view.ProfileURL(cfg.ProfileBaseURL, p.Record.ID()),
		})
	}
	batters := make([]map[string]interface{}, 0, len(result.Batters))
	for _, b := range result.Batters {
		batters = append(batters, map[string]interface{}{
			"record":      b.Record,
			"scores":      b.Scores,
			"profile_url": view.ProfileURL(cfg.ProfileBaseURL, b.Record.ID()),
		})
	}
	return map[string]interface{}{
		"pitchers": pitchers,
		"batters":  batters,
		"teams":    result.Teams,
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runPipeline handles config loading, weight loading, and one full reload.
func runPipeline(fn func(cfg *config.Config, result *pipeline.Result) error) error {
	cfg := config.Load()
	if flagPitchersFile != "" {
		cfg.PitchersFile = flagPitchersFile
	}
	if flagBattersFile != "" {
		cfg.BattersFile = flagBattersFile
	}
	if flagBatterWeights != "" {
		cfg.BatterWeightsFile = flagBatterWeights
	}
	if flagPitcherWeights != "" {
		cfg.PitcherWeightsFile = flagPitcherWeights
	}

	bw, err := weights.LoadBatterWeights(cfg.BatterWeightsFile)
	if err != nil {
		return err
	}
	pw, err := weights.LoadPitcherWeights(cfg.PitcherWeightsFile)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cfg.PitchersFile, cfg.BattersFile, bw, pw, logger)
	if err != nil {
		return err
	}
	return fn(cfg, result)
}
