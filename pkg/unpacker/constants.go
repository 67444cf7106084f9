package unpacker

// Constants defining default values for run parameters. These are the
// baseline the resolver starts from before environment, config-file, and
// command-line overrides are applied.
const (
	// DefaultSortSignals enables time-sorting of unpacked signals.
	DefaultSortSignals = true
	// DefaultWriteRawSignals enables writing unpacked signals in binary form.
	DefaultWriteRawSignals = true
	// DefaultClusterPixels disables pixel clustering unless requested.
	DefaultClusterPixels = false
	// DefaultWriteOutPhotons disables photon output unless requested.
	DefaultWriteOutPhotons = false
	// DefaultFillHistograms disables histogram filling unless requested.
	DefaultFillHistograms = false
	// DefaultOutputFolder is the current working directory.
	DefaultOutputFolder = "."
	// DefaultVerboseLevel is general file input/output reporting.
	DefaultVerboseLevel = 1
	// DefaultMaxPacketsToRead of 0 means read every packet.
	DefaultMaxPacketsToRead = 0
	// DefaultEpsSpatial is the clustering spatial epsilon in pixels.
	DefaultEpsSpatial uint8 = 2
	// DefaultEpsTemporal is the clustering temporal epsilon.
	DefaultEpsTemporal = 500.0
	// DefaultMinPts is the clustering minimum-points threshold.
	DefaultMinPts uint8 = 3
	// DefaultQueryRegion of 0 means no region restriction.
	DefaultQueryRegion uint16 = 0
)

// RawFileExtension is the required extension for raw input files.
const RawFileExtension = ".tpx3"

// BatchFileSentinel is stored in Parameters.RawFile when a whole directory
// is processed instead of a single named file.
const BatchFileSentinel = "ALL"

// MinVerboseLevel and MaxVerboseLevel bound the accepted verbosity range.
// Levels: 0 errors only, 1 general file input/output, 2 config and event
// diagnostics, 3 buffer diagnostics.
const (
	MinVerboseLevel = 0
	MaxVerboseLevel = 3
)

// Recognized configuration-file keys.
const (
	KeyRawFolder        = "rawTPX3Folder"
	KeyRawFile          = "rawTPX3File"
	KeyWriteRawSignals  = "writeRawSignals"
	KeyOutputFolder     = "outputFolder"
	KeySortSignals      = "sortSignals"
	KeyVerboseLevel     = "verboseLevel"
	KeyClusterPixels    = "clusterPixels"
	KeyQueryRegion      = "queryRegion"
	KeyWriteOutPhotons  = "writeOutPhotons"
	KeyEpsSpatial       = "epsSpatial"
	KeyEpsTemporal      = "epsTemporal"
	KeyMinPts           = "minPts"
	KeyMaxPacketsToRead = "maxPacketsToRead"
	KeyFillHistograms   = "fillHistograms"
)

// EnvPrefix is the prefix for environment-variable overrides, e.g.
// TPX3_VERBOSELEVEL=2. Environment values rank below the config file and
// command-line flags.
const EnvPrefix = "TPX3"
