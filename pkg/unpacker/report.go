package unpacker

import (
	"fmt"
	"io"
)

// RenderParameters writes the resolved run configuration as a labeled block
// for human review. Pure formatting; the only failure mode is the writer's.
func RenderParameters(w io.Writer, params Parameters) {
	fmt.Fprintln(w, "=================== Run parameters ====================")
	fmt.Fprintf(w, "inputFolder: %s\n", params.RawFolder)
	fmt.Fprintf(w, "inputFile: %s\n", params.RawFile)
	fmt.Fprintf(w, "runHandle: %s\n", params.RunHandle)
	fmt.Fprintf(w, "outputFolder: %s\n", params.OutputFolder)
	fmt.Fprintf(w, "batchMode: %t\n", params.BatchMode)
	fmt.Fprintf(w, "sortSignals: %t\n", params.SortSignals)
	fmt.Fprintf(w, "writeRawSignals: %t\n", params.WriteRawSignals)
	fmt.Fprintf(w, "clusterPixels: %t\n", params.ClusterPixels)
	fmt.Fprintf(w, "writeOutPhotons: %t\n", params.WriteOutPhotons)
	fmt.Fprintf(w, "fillHistograms: %t\n", params.FillHistograms)
	fmt.Fprintf(w, "verboseLevel: %d\n", params.VerboseLevel)
	fmt.Fprintf(w, "maxPacketsToRead: %d\n", params.MaxPacketsToRead)
	fmt.Fprintf(w, "epsSpatial: %d\n", params.EpsSpatial)
	fmt.Fprintf(w, "epsTemporal: %g\n", params.EpsTemporal)
	fmt.Fprintf(w, "minPts: %d\n", params.MinPts)
	fmt.Fprintf(w, "queryRegion: %d\n", params.QueryRegion)
	fmt.Fprintln(w, "=======================================================")
	fmt.Fprintln(w)
}

// RenderDiagnostics writes per-stage timings and packet-category counts,
// including the derived unprocessed-packet count.
func RenderDiagnostics(w io.Writer, diag Diagnostics) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=============== Diagnostics ==============")
	fmt.Fprintf(w, "Total time: %g seconds\n", diag.TotalTime.Seconds())
	fmt.Fprintf(w, "Total unpacking time: %g seconds\n", diag.UnpackingTime.Seconds())
	fmt.Fprintf(w, "Total sorting time: %g seconds\n", diag.SortingTime.Seconds())
	fmt.Fprintf(w, "Total clustering time: %g seconds\n", diag.ClusteringTime.Seconds())
	fmt.Fprintf(w, "Total writing time: %g seconds\n", diag.WritingTime.Seconds())
	fmt.Fprintln(w, "------------------------------------------")
	fmt.Fprintf(w, "Number of data packets: %d\n", diag.DataPackets)
	fmt.Fprintf(w, "Number of header packets: %d\n", diag.BufferPackets)
	fmt.Fprintf(w, "Number of TDC packets: %d\n", diag.TDCPackets)
	fmt.Fprintf(w, "Number of pixel packets: %d\n", diag.PixelPackets)
	fmt.Fprintf(w, "Number of global timestamp packets: %d\n", diag.GlobalTimestampPackets)
	fmt.Fprintf(w, "Number of control packets: %d\n", diag.ControlPackets)
	fmt.Fprintf(w, "Number of unprocessed packets: %d\n", diag.Unprocessed())
	fmt.Fprintln(w, "==========================================")
}
