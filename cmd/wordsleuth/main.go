// cmd/wordsleuth/main.go
//
// CLI driver for the wordsleuth solver.
// Commands:
//   wordsleuth solve --answer crane   solve one answer, print each round.
//   wordsleuth run                    batch-solve an answers list, print the report.
//
// Configuration comes from env (.env supported), an optional YAML run
// file (--config), and flags, in increasing precedence.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wordsleuth/solver/internal/batch"
	"github.com/wordsleuth/solver/internal/config"
	"github.com/wordsleuth/solver/internal/solver"
	"github.com/wordsleuth/solver/internal/words"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg        config.Config
		configFile string
	)

	root := &cobra.Command{
		Use:           "wordsleuth",
		Short:         "Greedy elimination solver for 5-letter word puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.FromEnv()
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			if configFile != "" {
				if err := cfg.ApplyFile(configFile); err != nil {
					return err
				}
			}
			applyFlags(cmd, &cfg)
			return cfg.Validate()
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML run config file")
	root.PersistentFlags().String("answers", "", "answers list file (default: embedded)")
	root.PersistentFlags().String("corpus", "", "frequency corpus file (default: embedded)")
	root.PersistentFlags().String("opener", "", "fixed round-one guess (default: "+solver.DefaultOpener+")")
	root.PersistentFlags().String("strategy", "", "guess ranking: frequency or letters")
	root.PersistentFlags().Int("max-rounds", 0, "guess budget per attempt")

	root.AddCommand(newSolveCmd(&cfg), newRunCmd(&cfg))
	return root
}

// applyFlags overlays explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("answers") {
		cfg.AnswersFile, _ = f.GetString("answers")
	}
	if f.Changed("corpus") {
		cfg.CorpusFile, _ = f.GetString("corpus")
	}
	if f.Changed("opener") {
		cfg.Opener, _ = f.GetString("opener")
	}
	if f.Changed("strategy") {
		cfg.Strategy, _ = f.GetString("strategy")
	}
	if f.Changed("max-rounds") {
		cfg.MaxRounds, _ = f.GetInt("max-rounds")
	}
}

func newSolveCmd(cfg *config.Config) *cobra.Command {
	var answer string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single answer and print each round",
		RunE: func(cmd *cobra.Command, args []string) error {
			answer = strings.ToLower(strings.TrimSpace(answer))
			if len(answer) != 5 {
				return fmt.Errorf("answer must be 5 letters, got %q", answer)
			}
			_, dict, err := loadLists(*cfg)
			if err != nil {
				return err
			}
			s := solver.New(buildStrategy(*cfg, dict), solver.WithMaxRounds(cfg.MaxRounds))
			outcome, history := s.Solve(answer, dict)
			for i, g := range history {
				fmt.Printf("%d  %s  %s\n", i+1, g.Word, g.Mask)
			}
			if outcome.Status == solver.Solved {
				fmt.Printf("solved %q in %d\n", outcome.Word, outcome.Rounds)
			} else {
				fmt.Printf("%s after %d guesses\n", outcome.Status, len(history))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "the secret answer to solve for")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func newRunCmd(cfg *config.Config) *cobra.Command {
	var (
		limit       int
		trackSolved bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Batch-solve an answers list and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, dict, err := loadLists(*cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				cfg.Limit = limit
			}
			if cmd.Flags().Changed("track-solved") {
				cfg.TrackSolved = trackSolved
			}

			runner := &batch.Runner{
				Dictionary:  dict,
				Strategy:    buildStrategy(*cfg, dict),
				MaxRounds:   cfg.MaxRounds,
				TrackSolved: cfg.TrackSolved,
			}
			report := runner.Run(answers, cfg.Limit)

			fmt.Printf("attempts: %d  solved: %d  missed: %d\n",
				report.Attempts, report.Solved, len(report.Missed))
			fmt.Printf("average rounds: %.2f\n", report.AverageRounds())
			for rounds, n := range report.Histogram {
				if rounds == 0 || n == 0 {
					continue
				}
				fmt.Printf("  in %d: %d\n", rounds, n)
			}
			for _, w := range report.Missed {
				fmt.Printf("missed: %s\n", w)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "cap on batch attempts (0 = all)")
	cmd.Flags().BoolVar(&trackSolved, "track-solved", false, "exclude solved answers from later attempts")
	return cmd
}

// loadLists resolves the answers and dictionary lists from configured
// paths, falling back to the embedded defaults.
func loadLists(cfg config.Config) (answers, dict []string, err error) {
	if cfg.AnswersFile == "" || cfg.CorpusFile == "" {
		if err := words.Init(); err != nil {
			return nil, nil, err
		}
		answers, dict = words.Answers(), words.Dictionary()
	}
	if cfg.AnswersFile != "" {
		if answers, err = words.LoadAnswers(cfg.AnswersFile); err != nil {
			return nil, nil, err
		}
	}
	if cfg.CorpusFile != "" {
		if dict, err = words.LoadCorpus(cfg.CorpusFile); err != nil {
			return nil, nil, err
		}
	}
	a, d := len(answers), len(dict)
	log.Info().Int("answers", a).Int("dictionary", d).Msg("word lists loaded")
	return answers, dict, nil
}

// buildStrategy maps the configured strategy name onto an implementation.
func buildStrategy(cfg config.Config, dict []string) solver.Strategy {
	switch cfg.Strategy {
	case "letters":
		s := solver.NewLetterWeighted(solver.LetterFrequencies(dict))
		if cfg.Opener != "" {
			s.Opener = cfg.Opener
		}
		return s
	default:
		s := solver.NewFirstCandidate()
		if cfg.Opener != "" {
			s.Opener = cfg.Opener
		}
		return s
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
