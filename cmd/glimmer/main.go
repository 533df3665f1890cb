package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/glimmer/internal/anim"
	"github.com/san-kum/glimmer/internal/config"
	"github.com/san-kum/glimmer/internal/life"
	"github.com/san-kum/glimmer/internal/sparkle"
	"github.com/san-kum/glimmer/internal/term"
	"github.com/san-kum/glimmer/internal/tui"
	"github.com/spf13/cobra"
)

var (
	width       int
	height      int
	interval    time.Duration
	seedHex     string
	configFile  string
	preset      string
	generations int
)

// Fallback input when nothing is piped in and no file is given.
const sampleText = `Type {
    a: "a",
    b: [
        0,
        1,
    ],
    c: {
        "So": "pretty",
    },
}`

func main() {
	rootCmd := &cobra.Command{
		Use:   "glimmer [file]",
		Short: "sparkly pretty-printing with a life-board screensaver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInteractive,
	}

	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "grid width in columns")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "grid height in rows")
	rootCmd.PersistentFlags().DurationVar(&interval, "interval", config.DefaultInterval, "pause between frames")
	rootCmd.PersistentFlags().StringVar(&seedHex, "seed", "", "hex seed (up to 32 bytes); empty draws from entropy")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	printCmd := &cobra.Command{
		Use:   "print [file]",
		Short: "decorate text and print it once",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPrint,
	}

	animateCmd := &cobra.Command{
		Use:   "animate [file]",
		Short: "animate text over a life board until a key is pressed",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnimate,
	}

	censusCmd := &cobra.Command{
		Use:   "census",
		Short: "plot the board population over generations",
		RunE:  runCensus,
	}
	censusCmd.Flags().IntVar(&generations, "generations", 200, "generations to simulate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s %dx%d @ %v\n", name, p.Width, p.Height, p.Interval)
			}
		},
	}

	rootCmd.AddCommand(printCmd, animateCmd, censusCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	text, err := readText(args)
	if err != nil {
		return err
	}
	return tui.Run(seed, text, cfg)
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	text, err := readText(args)
	if err != nil {
		return err
	}
	_, err = fmt.Print(sparkle.Decorate(seed, text))
	return err
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	text, err := readText(args)
	if err != nil {
		return err
	}

	t := term.NewANSI(os.Stdin, os.Stdout)
	w, h := cfg.Width, cfg.Height
	if !cmd.Flags().Changed("width") && !cmd.Flags().Changed("height") && configFile == "" && preset == "" {
		w, h = t.Size()
	}
	return anim.New(t, w, h, cfg.Interval).Run(seed, text)
}

func runCensus(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}

	board := life.New(seed, cfg.Width, cfg.Height)
	data := make([]float64, 0, generations+1)
	data = append(data, float64(board.Population()))
	for i := 0; i < generations; i++ {
		board.Tick()
		data = append(data, float64(board.Population()))
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Caption(fmt.Sprintf("live cells over %d generations (%dx%d, seed %s)",
			generations, cfg.Width, cfg.Height, config.FormatSeed(seed)))))
	return nil
}

// resolveConfig layers defaults, preset, config file, and flags, in
// ascending precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = interval
	}
	if seedHex != "" {
		cfg.Seed = seedHex
	}

	return cfg, nil
}

// readText takes the text to render from a file argument, from piped stdin,
// or falls back to a sample block.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		if len(data) > 0 {
			return string(data), nil
		}
	}

	return sampleText, nil
}
