package unpacker

// Parameters holds the fully resolved run configuration consumed by the
// processing pipeline. It is built once per invocation: defaults first,
// then environment overrides, then the optional config file, then
// command-line flags, each layer winning over the one before it. The
// struct is handed to the pipeline by value and never mutated afterwards.
type Parameters struct {
	// --- Location ---
	RawFolder    string // directory holding raw input files
	RawFile      string // input file name, or BatchFileSentinel in batch mode
	RunHandle    string // RawFile without its final extension; empty in batch mode
	OutputFolder string // destination for derived outputs

	// --- Mode flags ---
	BatchMode       bool // process every raw file in RawFolder
	SortSignals     bool
	WriteRawSignals bool
	ClusterPixels   bool
	WriteOutPhotons bool
	FillHistograms  bool

	// --- Tunables passed through to the clustering stage ---
	VerboseLevel     int // bounded [MinVerboseLevel, MaxVerboseLevel]
	MaxPacketsToRead int // 0 = unbounded
	EpsSpatial       uint8
	EpsTemporal      float64
	MinPts           uint8
	QueryRegion      uint16
}

// NewDefaultParameters returns the baseline configuration every run starts
// from. Pure function, no failure mode.
func NewDefaultParameters() Parameters {
	return Parameters{
		OutputFolder:     DefaultOutputFolder,
		SortSignals:      DefaultSortSignals,
		WriteRawSignals:  DefaultWriteRawSignals,
		ClusterPixels:    DefaultClusterPixels,
		WriteOutPhotons:  DefaultWriteOutPhotons,
		FillHistograms:   DefaultFillHistograms,
		VerboseLevel:     DefaultVerboseLevel,
		MaxPacketsToRead: DefaultMaxPacketsToRead,
		EpsSpatial:       DefaultEpsSpatial,
		EpsTemporal:      DefaultEpsTemporal,
		MinPts:           DefaultMinPts,
		QueryRegion:      DefaultQueryRegion,
	}
}
