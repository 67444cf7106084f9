package unpacker

import (
	"context"
	"io"
)

// SignalType identifies the category of a raw signal.
type SignalType uint8

const (
	SignalTDC   SignalType = 1
	SignalPixel SignalType = 2
	SignalGTS   SignalType = 3
)

// String returns the human-readable name used in diagnostic tables.
func (t SignalType) String() string {
	switch t {
	case SignalTDC:
		return "TDC"
	case SignalPixel:
		return "Pixel"
	case SignalGTS:
		return "GTS"
	default:
		return "Unknown"
	}
}

// Signal is a single raw detector signal: a TDC edge, a pixel hit, or a
// global timestamp.
type Signal struct {
	Type SignalType
	X    uint8   // pixel x-coordinate
	Y    uint8   // pixel y-coordinate
	ToA  float64 // time of arrival, seconds
	ToT  float32 // time over threshold, nanoseconds
}

// Photon is a single reconstructed photon produced by the clustering stage.
type Photon struct {
	X             float32
	Y             float32
	ToA           float64
	IntegratedToT uint16
}

// PacketUnpacker decodes a raw packet stream into signals, tallying packet
// categories into diag as it goes. Implementations must honor
// Parameters.MaxPacketsToRead (0 = unbounded).
type PacketUnpacker interface {
	Unpack(ctx context.Context, r io.Reader, params Parameters, diag *Diagnostics) ([]Signal, error)
}

// SignalSorter orders signals in time prior to clustering or writing.
type SignalSorter interface {
	Sort(signals []Signal)
}

// PixelClusterer groups pixel hits into photons using the spatial and
// temporal epsilons, minimum-points threshold, and query region carried in
// Parameters.
type PixelClusterer interface {
	Cluster(params Parameters, signals []Signal) []Photon
}

// RawSignalWriter persists unpacked signals in binary form.
type RawSignalWriter interface {
	WriteSignals(params Parameters, signals []Signal) error
}

// PhotonWriter persists reconstructed photons.
type PhotonWriter interface {
	WritePhotons(params Parameters, photons []Photon) error
}

// Histogrammer accumulates per-run histograms from unpacked signals.
type Histogrammer interface {
	Fill(params Parameters, signals []Signal) error
}

// NoOpUnpacker provides a default, do-nothing implementation of the
// PacketUnpacker interface.
type NoOpUnpacker struct{}

// Unpack implements PacketUnpacker. It consumes nothing and reports no signals.
func (NoOpUnpacker) Unpack(ctx context.Context, r io.Reader, params Parameters, diag *Diagnostics) ([]Signal, error) {
	return nil, nil
}

// NoOpSorter provides a default, do-nothing implementation of SignalSorter.
type NoOpSorter struct{}

// Sort implements SignalSorter. It performs no action.
func (NoOpSorter) Sort(signals []Signal) {}

// NoOpClusterer provides a default, do-nothing implementation of PixelClusterer.
type NoOpClusterer struct{}

// Cluster implements PixelClusterer. It reports no photons.
func (NoOpClusterer) Cluster(params Parameters, signals []Signal) []Photon { return nil }

// NoOpRawWriter provides a default, do-nothing implementation of RawSignalWriter.
type NoOpRawWriter struct{}

// WriteSignals implements RawSignalWriter. It performs no action.
func (NoOpRawWriter) WriteSignals(params Parameters, signals []Signal) error { return nil }

// NoOpPhotonWriter provides a default, do-nothing implementation of PhotonWriter.
type NoOpPhotonWriter struct{}

// WritePhotons implements PhotonWriter. It performs no action.
func (NoOpPhotonWriter) WritePhotons(params Parameters, photons []Photon) error { return nil }

// NoOpHistogrammer provides a default, do-nothing implementation of Histogrammer.
type NoOpHistogrammer struct{}

// Fill implements Histogrammer. It performs no action.
func (NoOpHistogrammer) Fill(params Parameters, signals []Signal) error { return nil }

// Pipeline bundles the stage implementations the engine drives. Any nil
// stage is replaced with its NoOp counterpart by NewPipeline.
type Pipeline struct {
	Unpacker     PacketUnpacker
	Sorter       SignalSorter
	Clusterer    PixelClusterer
	RawWriter    RawSignalWriter
	PhotonWriter PhotonWriter
	Histogrammer Histogrammer
}

// NewPipeline returns p with every nil stage replaced by a NoOp
// implementation, so the engine never has to nil-check a stage.
func NewPipeline(p Pipeline) Pipeline {
	if p.Unpacker == nil {
		p.Unpacker = NoOpUnpacker{}
	}
	if p.Sorter == nil {
		p.Sorter = NoOpSorter{}
	}
	if p.Clusterer == nil {
		p.Clusterer = NoOpClusterer{}
	}
	if p.RawWriter == nil {
		p.RawWriter = NoOpRawWriter{}
	}
	if p.PhotonWriter == nil {
		p.PhotonWriter = NoOpPhotonWriter{}
	}
	if p.Histogrammer == nil {
		p.Histogrammer = NoOpHistogrammer{}
	}
	return p
}
