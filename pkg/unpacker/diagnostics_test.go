package unpacker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsUnprocessed(t *testing.T) {
	d := Diagnostics{
		DataPackets:            100,
		BufferPackets:          10,
		TDCPackets:             20,
		PixelPackets:           50,
		GlobalTimestampPackets: 5,
		ControlPackets:         5,
	}
	assert.Equal(t, int64(10), d.Unprocessed())

	assert.Equal(t, int64(0), Diagnostics{}.Unprocessed())
}

func TestDiagnosticsMerge(t *testing.T) {
	total := Diagnostics{DataPackets: 10, PixelPackets: 4, UnpackingTime: time.Second, FilesProcessed: 1}
	total.Merge(Diagnostics{DataPackets: 5, TDCPackets: 2, UnpackingTime: 2 * time.Second, SortingTime: time.Second, FilesProcessed: 1})

	assert.Equal(t, int64(15), total.DataPackets)
	assert.Equal(t, int64(4), total.PixelPackets)
	assert.Equal(t, int64(2), total.TDCPackets)
	assert.Equal(t, 3*time.Second, total.UnpackingTime)
	assert.Equal(t, time.Second, total.SortingTime)
	assert.Equal(t, 2, total.FilesProcessed)
}

func TestNewDefaultParameters(t *testing.T) {
	p := NewDefaultParameters()

	assert.Empty(t, p.RawFolder)
	assert.Empty(t, p.RawFile)
	assert.Empty(t, p.RunHandle)
	assert.Equal(t, ".", p.OutputFolder)
	assert.False(t, p.BatchMode)
	assert.True(t, p.SortSignals)
	assert.True(t, p.WriteRawSignals)
	assert.False(t, p.ClusterPixels)
	assert.False(t, p.WriteOutPhotons)
	assert.False(t, p.FillHistograms)
	assert.Equal(t, 1, p.VerboseLevel)
	assert.Equal(t, 0, p.MaxPacketsToRead)
	assert.Equal(t, uint8(2), p.EpsSpatial)
	assert.Equal(t, 500.0, p.EpsTemporal)
	assert.Equal(t, uint8(3), p.MinPts)
	assert.Equal(t, uint16(0), p.QueryRegion)

	// Pure function: successive calls agree.
	assert.Equal(t, p, NewDefaultParameters())
}

func TestSignalTypeString(t *testing.T) {
	assert.Equal(t, "TDC", SignalTDC.String())
	assert.Equal(t, "Pixel", SignalPixel.String())
	assert.Equal(t, "GTS", SignalGTS.String())
	assert.Equal(t, "Unknown", SignalType(9).String())
}
