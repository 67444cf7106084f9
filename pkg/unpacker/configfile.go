package unpacker

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lanl/HERMES/pkg/util"
)

// ReadConfigFile parses a key=value configuration file into params. The only
// hard failure is a file that cannot be opened; every per-key problem is
// logged with the offending key, value, and error, the field is left
// unmodified, and reading continues with the next line.
//
// Lines that are empty or contain '#' anywhere are skipped in full; a value
// followed by a trailing comment on the same line is treated as a comment
// line, not an assignment. Keys and values are trimmed of plain space
// characters only.
func ReadConfigFile(path string, params *Parameters, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigRead, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.ContainsRune(line, '#') {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			// A line without '=' is treated as a bare, unrecognized key.
			logger.Warn("Unknown configuration key", slog.String("key", strings.Trim(line, " ")))
			continue
		}
		key = strings.Trim(key, " ")
		value = strings.Trim(value, " ")

		if err := ApplyConfigValue(key, value, params); err != nil {
			if errors.Is(err, ErrUnknownKey) {
				logger.Warn("Unknown configuration key", slog.String("key", key))
			} else {
				logger.Warn("Invalid configuration value, keeping previous",
					slog.String("key", key),
					slog.String("value", value),
					slog.String("error", err.Error()))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigRead, path, err)
	}
	return nil
}

// ErrUnknownKey marks a key the configuration sources do not recognize.
// Unknown keys never fail a read; callers log and move on.
var ErrUnknownKey = errors.New("unknown configuration key")

// ConfigFileKeys lists every recognized configuration key, in the order the
// parameter block reports them.
var ConfigFileKeys = []string{
	KeyRawFolder, KeyRawFile, KeyWriteRawSignals, KeyOutputFolder,
	KeySortSignals, KeyVerboseLevel, KeyClusterPixels, KeyQueryRegion,
	KeyWriteOutPhotons, KeyEpsSpatial, KeyEpsTemporal, KeyMinPts,
	KeyMaxPacketsToRead, KeyFillHistograms,
}

// ApplyConfigValue converts value to the target type of key and writes it
// into params. A conversion failure leaves the field untouched. Shared by
// the config-file reader and the environment-override layer.
func ApplyConfigValue(key, value string, params *Parameters) error {
	switch key {
	case KeyRawFolder:
		params.RawFolder = value
	case KeyRawFile:
		setRawFile(value, params)
	case KeyWriteRawSignals:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		params.WriteRawSignals = b
	case KeyOutputFolder:
		params.OutputFolder = value
	case KeySortSignals:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		params.SortSignals = b
	case KeyVerboseLevel:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if n < MinVerboseLevel || n > MaxVerboseLevel {
			return fmt.Errorf("verbose level %d outside [%d, %d]", n, MinVerboseLevel, MaxVerboseLevel)
		}
		params.VerboseLevel = n
	case KeyClusterPixels:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		params.ClusterPixels = b
	case KeyQueryRegion:
		n, err := parseUint(value, 16)
		if err != nil {
			return err
		}
		params.QueryRegion = uint16(n)
	case KeyWriteOutPhotons:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		params.WriteOutPhotons = b
	case KeyEpsSpatial:
		n, err := parseUint(value, 8)
		if err != nil {
			return err
		}
		params.EpsSpatial = uint8(n)
	case KeyEpsTemporal:
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		params.EpsTemporal = x
	case KeyMinPts:
		n, err := parseUint(value, 8)
		if err != nil {
			return err
		}
		params.MinPts = uint8(n)
	case KeyMaxPacketsToRead:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		params.MaxPacketsToRead = n
	case KeyFillHistograms:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		params.FillHistograms = b
	default:
		return ErrUnknownKey
	}
	return nil
}

// setRawFile applies the special handling of the rawTPX3File key: an empty
// value or the batch sentinel ("ALL"/"all") selects batch mode and clears
// the run handle; any other value names a single file and derives its
// run handle.
func setRawFile(value string, params *Parameters) {
	if value == "" || value == BatchFileSentinel || value == strings.ToLower(BatchFileSentinel) {
		params.RawFile = BatchFileSentinel
		params.RunHandle = ""
		params.BatchMode = true
		return
	}
	params.RawFile = value
	params.RunHandle = util.RunHandle(value)
	params.BatchMode = false
}

// parseBool accepts exactly the literals "true" and "false".
func parseBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("expected 'true' or 'false', got %q", value)
}

// parseUint parses a non-negative integer that must fit in bitSize bits.
func parseUint(value string, bitSize int) (uint64, error) {
	return strconv.ParseUint(value, 10, bitSize)
}
