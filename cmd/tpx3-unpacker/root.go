package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lanl/HERMES/internal/cli"
	"github.com/lanl/HERMES/internal/cli/config"
	"github.com/lanl/HERMES/pkg/unpacker"
)

var (
	// Set at build time via -ldflags.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the single command: resolve run parameters from defaults,
// environment, config file, and flags, then drive the unpacking pipeline.
var rootCmd = &cobra.Command{
	Use:           "tpx3-unpacker",
	Short:         "Unpacks and processes raw TPX3 detector data files.",
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// Bootstrap logger for resolution; replaced once the verbose
		// level is known.
		bootLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

		params, err := config.Resolve(cmd.Flags(), bootLogger, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: config.LogLevel(params.VerboseLevel),
		}))

		fmt.Fprintln(cmd.OutOrStdout(), config.Summary(params))

		// Stage implementations are injected here; absent ones run as NoOps.
		pipe := unpacker.Pipeline{}

		return cli.Run(ctx, params, pipe, logger, cmd.OutOrStdout())
	},
}

// Execute parses the argument vector and runs the command. A help request
// anywhere in the arguments short-circuits all other processing.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no command-line arguments provided.")
		printUsage(os.Stderr, 1)
		return fmt.Errorf("missing arguments")
	}

	if level, ok := scanHelp(args); ok {
		printUsage(os.Stdout, level)
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage(os.Stderr, 1)
		return err
	}
	return nil
}

// scanHelp reports whether -h/--help appears anywhere in args. A bare
// numeral immediately after the flag selects the detail level (1 = basic,
// 2 = basic plus examples); anything else means level 1.
func scanHelp(args []string) (level int, ok bool) {
	for i, arg := range args {
		if arg != "-h" && arg != "--help" {
			continue
		}
		level = 1
		if i+1 < len(args) {
			switch args[i+1] {
			case "1":
				level = 1
			case "2":
				level = 2
			}
		}
		return level, true
	}
	return 0, false
}

func printUsage(w io.Writer, level int) {
	fmt.Fprintln(w, "Usage: tpx3-unpacker [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output Options:")
	fmt.Fprintln(w, "  -i, --inputFile <file>     Input .tpx3 file")
	fmt.Fprintln(w, "  -I, --inputDir <dir>       Input directory (batch mode)")
	fmt.Fprintln(w, "  -b, --batch                Process every .tpx3 file in the input directory")
	fmt.Fprintln(w, "  -o, --outputDir <dir>      Output directory")
	fmt.Fprintln(w, "  -c, --configFile <file>    Configuration file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Processing Options:")
	fmt.Fprintln(w, "  -s, --sort                 Enable signal sorting")
	fmt.Fprintln(w, "  -w, --writeRawSignals      Enable writing raw signals")
	fmt.Fprintln(w, "  -W, --no-writeRawSignals   Disable writing raw signals (wins over -w)")
	fmt.Fprintln(w, "  -C, --clusterPixels        Enable pixel clustering")
	fmt.Fprintln(w, "  -p, --writeOutPhotons      Enable writing photon data")
	fmt.Fprintln(w, "  -H, --fillHistograms       Enable histogram filling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clustering Parameters:")
	fmt.Fprintln(w, "  -S, --epsSpatial <n>       Spatial epsilon in pixels")
	fmt.Fprintln(w, "  -T, --epsTemporal <n>      Temporal epsilon")
	fmt.Fprintln(w, "  -P, --minPts <n>           Minimum points per cluster")
	fmt.Fprintln(w, "  -q, --queryRegion <n>      Query region")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnostic Options:")
	fmt.Fprintln(w, "  -m, --maxPackets <n>       Maximum packets to read (0 = all)")
	fmt.Fprintln(w, "  -v, --verbose <level>      Verbose level (0-3, default 1)")
	fmt.Fprintln(w, "  -h, --help [1|2]           Show this help (2 adds examples)")

	if level >= 2 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Examples:")
		fmt.Fprintln(w, "  # Use a config file as-is:")
		fmt.Fprintln(w, "  tpx3-unpacker -c settings.config")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  # Direct file processing:")
		fmt.Fprintln(w, "  tpx3-unpacker -i data.tpx3 -o /path/to/output -v 2")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  # Config file with overrides:")
		fmt.Fprintln(w, "  tpx3-unpacker -c settings.config -o /different/output -v 3 -W")
		fmt.Fprintln(w, "  tpx3-unpacker -c settings.config --clusterPixels -S 5 -T 100.0")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  # Batch processing with limits:")
		fmt.Fprintln(w, "  tpx3-unpacker -I /path/to/tpx3/files -o /path/to/output -s -H -m 1000")
	}
}

func init() {
	f := rootCmd.Flags()

	f.StringP("inputFile", "i", "", "input .tpx3 file")
	f.StringP("inputDir", "I", "", "input directory (batch mode)")
	f.StringP("outputDir", "o", "", "output directory")
	f.StringP("configFile", "c", "", "configuration file")
	f.BoolP("batch", "b", false, "process every raw file in the input directory")

	f.BoolP("sort", "s", false, "enable signal sorting")
	f.BoolP("writeRawSignals", "w", false, "enable writing raw signals")
	f.BoolP("no-writeRawSignals", "W", false, "disable writing raw signals")
	f.BoolP("clusterPixels", "C", false, "enable pixel clustering")
	f.BoolP("writeOutPhotons", "p", false, "enable writing photon data")
	f.BoolP("fillHistograms", "H", false, "enable histogram filling")

	// Numeric arguments are taken as strings so a bad value degrades to a
	// warning in the resolver instead of aborting the parse.
	f.StringP("verbose", "v", "1", "verbose level (0-3)")
	f.StringP("maxPackets", "m", "0", "maximum packets to read (0 = all)")
	f.StringP("epsSpatial", "S", "", "spatial epsilon in pixels")
	f.StringP("epsTemporal", "T", "", "temporal epsilon")
	f.StringP("minPts", "P", "", "minimum points per cluster")
	f.StringP("queryRegion", "q", "", "query region")
}
