package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanHelp(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLevel int
		wantOK    bool
	}{
		{"no help flag", []string{"-i", "run.tpx3"}, 0, false},
		{"bare short flag", []string{"-h"}, 1, true},
		{"bare long flag", []string{"--help"}, 1, true},
		{"explicit level one", []string{"-h", "1"}, 1, true},
		{"explicit level two", []string{"-h", "2"}, 2, true},
		{"level two long form", []string{"--help", "2"}, 2, true},
		{"non-numeral after flag", []string{"-h", "fast"}, 1, true},
		{"unknown numeral after flag", []string{"-h", "3"}, 1, true},
		{"help amid other flags", []string{"-i", "run.tpx3", "-h"}, 1, true},
		{"help before other flags", []string{"-h", "2", "-v", "3"}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := scanHelp(tt.args)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestPrintUsage(t *testing.T) {
	var basic bytes.Buffer
	printUsage(&basic, 1)
	out := basic.String()

	assert.Contains(t, out, "Usage: tpx3-unpacker [options]")
	assert.Contains(t, out, "-i, --inputFile")
	assert.Contains(t, out, "-c, --configFile")
	assert.Contains(t, out, "-W, --no-writeRawSignals")
	assert.NotContains(t, out, "Examples:")

	var detailed bytes.Buffer
	printUsage(&detailed, 2)
	out = detailed.String()

	assert.Contains(t, out, "Examples:")
	assert.Contains(t, out, "tpx3-unpacker -c settings.config")
}

func TestRootFlagsDefined(t *testing.T) {
	f := rootCmd.Flags()

	for _, name := range []string{
		"inputFile", "inputDir", "outputDir", "configFile", "batch",
		"sort", "writeRawSignals", "no-writeRawSignals",
		"clusterPixels", "writeOutPhotons", "fillHistograms",
		"verbose", "maxPackets", "epsSpatial", "epsTemporal", "minPts", "queryRegion",
	} {
		assert.NotNil(t, f.Lookup(name), name)
	}

	// Numeric flags ride as strings so the resolver can degrade bad values
	// to warnings.
	assert.Equal(t, "string", f.Lookup("verbose").Value.Type())
	assert.Equal(t, "string", f.Lookup("maxPackets").Value.Type())
	assert.Equal(t, "1", f.Lookup("verbose").DefValue)
	assert.Equal(t, "0", f.Lookup("maxPackets").DefValue)
}
