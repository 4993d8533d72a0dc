package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bishopart/bishop"
	"github.com/katalvlaran/bishopart/internal/config"
	"github.com/katalvlaran/bishopart/internal/logging"
	"github.com/katalvlaran/bishopart/internal/presentation/tui"
)

// newRootCmd builds the bishop command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bishop",
		Short: "Draw drunken bishop fingerprint art",
		Long: `Bishop digests a string into the random-art picture OpenSSH shows for host keys.
Every two bits of the data move a bishop one diagonal step; busier cells get denser symbols.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDraw,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log the resolved configuration to stderr")

	rootCmd.Flags().StringP("data", "d", "", "Data to encode")
	rootCmd.Flags().IntP("columns", "c", bishop.DefaultColumns, "Columns on the board")
	rootCmd.Flags().IntP("rows", "r", bishop.DefaultRows, "Rows on the board")
	rootCmd.Flags().IntP("steps", "s", bishop.DefaultSteps, "Steps for the bishop to take, or 0 for four per byte")
	rootCmd.Flags().Int("home", 0, "Starting cell index (default: board centre)")
	rootCmd.Flags().Bool("cycle", false, "Wrap visit counts past the end of the palette")
	rootCmd.Flags().String("symbols", bishop.DefaultSymbols, "Palette from unvisited to densest")
	rootCmd.Flags().Bool("hex", false, "Treat data as hex, colons allowed (e.g. 16:27:ac:a5)")
	rootCmd.Flags().Bool("color", false, "Colour the start and end markers when the terminal supports it")
	rootCmd.Flags().String("config", "", "YAML settings file; flags override its values")
	_ = rootCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(newCheckCmd(), newVersionCmd())

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger returns a stderr logger at Debug when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")

	return logging.New(cmd.ErrOrStderr(), logging.Level(verbose))
}

func runDraw(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	cfg, color, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	home := "centre"
	if cfg.Home != nil {
		home = strconv.Itoa(*cfg.Home)
	}
	log.Debug("resolved configuration",
		"rows", cfg.Rows, "columns", cfg.Columns, "steps", cfg.Steps,
		"home", home, "cycle", cfg.Cycle, "bytes", len(cfg.Data))

	art, err := bishop.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	res := art.Result()
	log.Debug("walk complete", "moves", len(res.Visited), "start", res.Start, "end", res.Current)

	out := art.String()
	if color {
		out = tui.Highlight(art, termenv.NewOutput(cmd.OutOrStdout()).Profile)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}

// resolveConfig layers defaults, the optional settings file and explicit flags.
func resolveConfig(cmd *cobra.Command) (bishop.Config, bool, error) {
	flags := cmd.Flags()
	cfg := bishop.DefaultConfig()
	color := false

	if path, _ := flags.GetString("config"); path != "" {
		f, err := config.Load(path)
		if err != nil {
			return cfg, false, err
		}
		f.Apply(&cfg)
		color = f.ColorEnabled()
	}

	if flags.Changed("columns") {
		cfg.Columns, _ = flags.GetInt("columns")
	}
	if flags.Changed("rows") {
		cfg.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("steps") {
		cfg.Steps, _ = flags.GetInt("steps")
	}
	if flags.Changed("home") {
		home, _ := flags.GetInt("home")
		cfg.Home = &home
	}
	if flags.Changed("cycle") {
		cfg.Cycle, _ = flags.GetBool("cycle")
	}
	if flags.Changed("symbols") {
		symbols, _ := flags.GetString("symbols")
		cfg.Symbols = append([]rune{}, []rune(symbols)...)
	}
	if flags.Changed("color") {
		color, _ = flags.GetBool("color")
	}

	data, _ := flags.GetString("data")
	if isHex, _ := flags.GetBool("hex"); isHex {
		raw, err := hex.DecodeString(strings.ReplaceAll(data, ":", ""))
		if err != nil {
			return cfg, false, fmt.Errorf("invalid hex data: %w", err)
		}
		cfg.Data = raw
	} else {
		cfg.Data = []byte(data)
	}

	return cfg, color, nil
}
