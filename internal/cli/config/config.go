package config

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lanl/HERMES/pkg/unpacker"
	"github.com/lanl/HERMES/pkg/util"
)

// Resolve merges every configuration source into final run parameters under
// a fixed precedence: built-in defaults, then TPX3_* environment variables,
// then the optional config file, then command-line flags. Flags are applied
// only when explicitly given (flags.Changed), so a flag left at its default
// never masks a config-file value.
//
// Fatal conditions: an unopenable config file, conflicting or missing input
// sources, batch mode without a directory, and a missing or wrong-extension
// input file. Everything past those degrades gracefully: a bad value is
// logged and the previously resolved value is kept.
//
// Informational override echoes go to out; warnings go through logger.
func Resolve(flags *pflag.FlagSet, logger *slog.Logger, out io.Writer) (unpacker.Parameters, error) {
	params := unpacker.NewDefaultParameters()

	envSetOutputFolder := applyEnvironment(&params, logger)

	configFileUsed := false
	if flags.Changed("configFile") {
		path, _ := flags.GetString("configFile")
		if err := unpacker.ReadConfigFile(path, &params, logger); err != nil {
			logger.Error("Failed to read configuration file", slog.String("path", path), slog.String("error", err.Error()))
			return params, err
		}
		configFileUsed = true
		fmt.Fprintf(out, "Loaded configuration from: %s\n", path)
	}

	inputFile, _ := flags.GetString("inputFile")
	inputDir, _ := flags.GetString("inputDir")
	batch, _ := flags.GetBool("batch")

	// Input-source validation. Exactly one of input file, input directory,
	// or a config-file-supplied source must determine the location fields.
	if inputFile != "" && inputDir != "" {
		err := fmt.Errorf("%w: -i/--inputFile and -I/--inputDir", unpacker.ErrInputConflict)
		logger.Error(err.Error())
		return params, err
	}
	if batch && inputFile != "" {
		// Tolerated: the named file wins and batch is ignored.
		logger.Warn("Batch flag ignored because an input file was given",
			slog.String("inputFile", inputFile))
		batch = false
	}
	if batch && inputDir == "" {
		err := fmt.Errorf("%w: -b/--batch given without -I/--inputDir", unpacker.ErrBatchWithoutDir)
		logger.Error(err.Error())
		return params, err
	}
	if inputFile == "" && inputDir == "" && !configFileUsed {
		err := fmt.Errorf("%w: provide -i <file>, -I <dir>, or -c <configFile>", unpacker.ErrNoInputSource)
		logger.Error(err.Error())
		return params, err
	}

	switch {
	case inputFile != "":
		if !util.FileExists(inputFile) {
			err := fmt.Errorf("%w: %s", unpacker.ErrInputFileMissing, inputFile)
			logger.Error(err.Error())
			return params, err
		}
		if !util.HasExtension(inputFile, unpacker.RawFileExtension) {
			err := fmt.Errorf("%w: %s must have the %s extension", unpacker.ErrBadExtension, inputFile, unpacker.RawFileExtension)
			logger.Error(err.Error())
			return params, err
		}
		dir, file := util.SplitPath(inputFile)
		params.RawFolder = dir
		params.RawFile = file
		params.RunHandle = util.RunHandle(file)
		params.BatchMode = false
	case inputDir != "":
		// No existence check on the directory itself; enumeration happens
		// when the pipeline runs.
		params.RawFolder = inputDir
		params.RawFile = unpacker.BatchFileSentinel
		params.RunHandle = ""
		params.BatchMode = true
	}

	// Output folder: an explicit flag wins. It tracks the input folder only
	// when no other source named one; a value from the environment or the
	// config file (including the file's own default) is never reset by CLI
	// silence.
	if flags.Changed("outputDir") {
		params.OutputFolder, _ = flags.GetString("outputDir")
		fmt.Fprintf(out, "Output folder: %s\n", params.OutputFolder)
	} else if !configFileUsed && !envSetOutputFolder {
		if params.RawFolder == "" {
			params.OutputFolder = unpacker.DefaultOutputFolder
		} else {
			params.OutputFolder = params.RawFolder
		}
	}

	applyFlagOverrides(&params, flags, logger, out)

	return params, nil
}

// applyEnvironment layers TPX3_* environment variables over the defaults.
// Per-field isolation matches the config-file reader: a bad value is logged
// and skipped. Reports whether the output folder was among the applied
// overrides, so later defaulting does not clobber it.
func applyEnvironment(params *unpacker.Parameters, logger *slog.Logger) (setOutputFolder bool) {
	v := viper.New()
	v.SetEnvPrefix(unpacker.EnvPrefix)
	for _, key := range unpacker.ConfigFileKeys {
		// Binds e.g. verboseLevel to TPX3_VERBOSELEVEL.
		_ = v.BindEnv(key)
	}
	for _, key := range unpacker.ConfigFileKeys {
		if !v.IsSet(key) {
			continue
		}
		value := v.GetString(key)
		if err := unpacker.ApplyConfigValue(key, value, params); err != nil {
			logger.Warn("Invalid environment override, keeping previous",
				slog.String("key", key),
				slog.String("value", value),
				slog.String("error", err.Error()))
			continue
		}
		if key == unpacker.KeyOutputFolder {
			setOutputFolder = true
		}
		logger.Info("Applied environment override",
			slog.String("key", key), slog.String("value", value))
	}
	return setOutputFolder
}

// applyFlagOverrides folds every explicitly given flag into params, echoing
// each applied override to out. CLI values win over everything resolved so
// far. Numeric flags are declared as strings upstream so a value that fails
// to parse degrades to a warning instead of aborting the run.
func applyFlagOverrides(params *unpacker.Parameters, flags *pflag.FlagSet, logger *slog.Logger, out io.Writer) {
	if flags.Changed("sort") {
		params.SortSignals, _ = flags.GetBool("sort")
		fmt.Fprintf(out, "Signal sorting: %s\n", enabled(params.SortSignals))
	}
	if flags.Changed("writeRawSignals") {
		params.WriteRawSignals = true
		fmt.Fprintln(out, "Write raw signals: enabled")
	}
	if flags.Changed("no-writeRawSignals") {
		// When both -w and -W are given, -W wins.
		params.WriteRawSignals = false
		fmt.Fprintln(out, "Write raw signals: disabled")
	}
	if flags.Changed("clusterPixels") {
		params.ClusterPixels, _ = flags.GetBool("clusterPixels")
		fmt.Fprintf(out, "Cluster pixels: %s\n", enabled(params.ClusterPixels))
	}
	if flags.Changed("writeOutPhotons") {
		params.WriteOutPhotons, _ = flags.GetBool("writeOutPhotons")
		fmt.Fprintf(out, "Write out photons: %s\n", enabled(params.WriteOutPhotons))
	}
	if flags.Changed("fillHistograms") {
		params.FillHistograms, _ = flags.GetBool("fillHistograms")
		fmt.Fprintf(out, "Fill histograms: %s\n", enabled(params.FillHistograms))
	}

	if flags.Changed("verbose") {
		raw, _ := flags.GetString("verbose")
		level, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			logger.Warn("Unparsable verbose level, keeping previous",
				slog.String("value", raw),
				slog.Int("previous", params.VerboseLevel),
				slog.String("error", err.Error()))
		case level < unpacker.MinVerboseLevel || level > unpacker.MaxVerboseLevel:
			logger.Warn("Verbose level out of range, keeping previous",
				slog.Int("value", level),
				slog.Int("previous", params.VerboseLevel))
		default:
			params.VerboseLevel = level
			fmt.Fprintf(out, "Verbose level: %d\n", level)
		}
	}

	if flags.Changed("maxPackets") {
		raw, _ := flags.GetString("maxPackets")
		if n, err := strconv.Atoi(raw); err != nil || n < 0 {
			warnNumeric(logger, "maxPackets", raw, err)
		} else {
			params.MaxPacketsToRead = n
			fmt.Fprintf(out, "Max packets to read: %d\n", n)
		}
	}
	if flags.Changed("epsSpatial") {
		raw, _ := flags.GetString("epsSpatial")
		if n, err := strconv.ParseUint(raw, 10, 8); err != nil {
			warnNumeric(logger, "epsSpatial", raw, err)
		} else {
			params.EpsSpatial = uint8(n)
			fmt.Fprintf(out, "Epsilon spatial: %d\n", n)
		}
	}
	if flags.Changed("epsTemporal") {
		raw, _ := flags.GetString("epsTemporal")
		if x, err := strconv.ParseFloat(raw, 64); err != nil {
			warnNumeric(logger, "epsTemporal", raw, err)
		} else {
			params.EpsTemporal = x
			fmt.Fprintf(out, "Epsilon temporal: %g\n", x)
		}
	}
	if flags.Changed("minPts") {
		raw, _ := flags.GetString("minPts")
		if n, err := strconv.ParseUint(raw, 10, 8); err != nil {
			warnNumeric(logger, "minPts", raw, err)
		} else {
			params.MinPts = uint8(n)
			fmt.Fprintf(out, "Minimum points: %d\n", n)
		}
	}
	if flags.Changed("queryRegion") {
		raw, _ := flags.GetString("queryRegion")
		if n, err := strconv.ParseUint(raw, 10, 16); err != nil {
			warnNumeric(logger, "queryRegion", raw, err)
		} else {
			params.QueryRegion = uint16(n)
			fmt.Fprintf(out, "Query region: %d\n", n)
		}
	}
}

func warnNumeric(logger *slog.Logger, flag, value string, err error) {
	attrs := []any{slog.String("flag", flag), slog.String("value", value)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.Warn("Unparsable numeric flag argument, keeping previous", attrs...)
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// LogLevel maps the resolved verbose level to the slog level the CLI runs
// with: 0 errors only, 1 info, 2 and above debug.
func LogLevel(verboseLevel int) slog.Level {
	switch {
	case verboseLevel <= 0:
		return slog.LevelError
	case verboseLevel == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Summary returns the one-line input description printed at startup.
func Summary(params unpacker.Parameters) string {
	if params.BatchMode {
		return fmt.Sprintf("Input directory: %s (batch mode, all %s files)", params.RawFolder, unpacker.RawFileExtension)
	}
	path := params.RawFile
	if params.RawFolder != "" {
		path = strings.TrimSuffix(params.RawFolder, "/") + "/" + params.RawFile
	}
	return fmt.Sprintf("Input file: %s", path)
}
