package unpacker

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderParameters(t *testing.T) {
	params := NewDefaultParameters()
	params.RawFolder = "/data/runs"
	params.RawFile = "run042.tpx3"
	params.RunHandle = "run042"
	params.VerboseLevel = 2

	var buf bytes.Buffer
	RenderParameters(&buf, params)
	out := buf.String()

	assert.Contains(t, out, "Run parameters")
	assert.Contains(t, out, "inputFolder: /data/runs\n")
	assert.Contains(t, out, "inputFile: run042.tpx3\n")
	assert.Contains(t, out, "runHandle: run042\n")
	assert.Contains(t, out, "batchMode: false\n")
	assert.Contains(t, out, "sortSignals: true\n")
	assert.Contains(t, out, "verboseLevel: 2\n")
	assert.Contains(t, out, "epsTemporal: 500\n")
	assert.Contains(t, out, "minPts: 3\n")
}

func TestRenderDiagnostics(t *testing.T) {
	diag := Diagnostics{
		DataPackets:            100,
		BufferPackets:          10,
		TDCPackets:             20,
		PixelPackets:           50,
		GlobalTimestampPackets: 5,
		ControlPackets:         5,
		UnpackingTime:          1500 * time.Millisecond,
		TotalTime:              2 * time.Second,
	}

	var buf bytes.Buffer
	RenderDiagnostics(&buf, diag)
	out := buf.String()

	assert.Contains(t, out, "Diagnostics")
	assert.Contains(t, out, "Total time: 2 seconds\n")
	assert.Contains(t, out, "Total unpacking time: 1.5 seconds\n")
	assert.Contains(t, out, "Number of data packets: 100\n")
	assert.Contains(t, out, "Number of pixel packets: 50\n")
	assert.Contains(t, out, "Number of unprocessed packets: 10\n")
}
