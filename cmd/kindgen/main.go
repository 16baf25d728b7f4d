package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/unix"

	kindgeninternal "github.com/sublee/kindgen/internal/kindgen"
)

var Version = "dev"

var (
	bFlag       string
	tFlag       bool
	oFlag       string
	cFlag       string
	verbose     bool
	configFlag  string
	deriveFlags []string

	logger *zap.Logger
)

func init() {
	kindgeninternal.Version = Version
}

var rootCmd = &cobra.Command{
	Use:   "kindgen [flags] [patterns]",
	Short: "Generate kind types of sealed interfaces",
	Long: `kindgen finds interfaces annotated with //kindgen:kind directives in the
packages and generates their kind types and conversions into a file per
package.

Options default to kindgen.yaml in the working directory if it exists. Flags
override the file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		config.DisableStacktrace = true
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&bFlag, "tags", "b", "", "comma-separated build tags")
	flags.BoolVarP(&tFlag, "tests", "t", false, "include tests")
	flags.StringVarP(&oFlag, "output", "o", "kindgen_gen.go", "output file name")
	flags.StringVarP(&cFlag, "color", "c", "auto", "colorize (auto|always|never)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	flags.StringVar(&configFlag, "config", "kindgen.yaml", "config file")
	flags.StringSliceVar(&deriveFlags, "derive", nil, "capabilities to derive for every kind")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	configPath := configFlag
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(wd, configPath)
	}
	cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	cfg.override(cmd.Flags())

	color := false
	switch cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		err := fmt.Errorf("invalid -c value: %s", cFlag)
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	outs, err := kindgeninternal.Main(cmd.Context(), wd, os.Environ(), kindgeninternal.Options{
		Tags:   cfg.Tags,
		Tests:  cfg.Tests,
		Output: cfg.Output,
		Derive: cfg.Derive,
		Logger: logger,
	}, args)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		return err
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
	return nil
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab = regexp.MustCompile(`(?m)^\t.+`)
	rePos = regexp.MustCompile(`(?m)^[^\t\s:]+\.go:\d+:\d+:`)
)

// colorize adds ANSI color codes to the message. Positions are bold and the
// indented details are dimmed.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(bold + string(b) + reset)
	})
	return string(m)
}
