package unpacker

import "time"

// Diagnostics aggregates packet tallies and per-stage timings for one file
// or, after merging, for a whole run. It is passed explicitly through the
// pipeline; there is no package-level counter state.
type Diagnostics struct {
	// --- Packet tallies ---
	DataPackets            int64 // every packet read from the stream
	BufferPackets          int64 // buffer/header packets
	TDCPackets             int64
	PixelPackets           int64
	GlobalTimestampPackets int64
	ControlPackets         int64

	// --- Stage timings ---
	UnpackingTime  time.Duration
	SortingTime    time.Duration
	ClusteringTime time.Duration
	WritingTime    time.Duration
	TotalTime      time.Duration

	// FilesProcessed counts input files that completed the stage loop.
	FilesProcessed int
}

// Unprocessed returns the number of packets that fell into none of the
// known categories. Derived, never tracked independently.
func (d Diagnostics) Unprocessed() int64 {
	return d.DataPackets - d.BufferPackets - d.TDCPackets - d.PixelPackets -
		d.GlobalTimestampPackets - d.ControlPackets
}

// Merge accumulates another record into d. Used to fold per-file
// diagnostics into the run total in batch mode.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.DataPackets += other.DataPackets
	d.BufferPackets += other.BufferPackets
	d.TDCPackets += other.TDCPackets
	d.PixelPackets += other.PixelPackets
	d.GlobalTimestampPackets += other.GlobalTimestampPackets
	d.ControlPackets += other.ControlPackets
	d.UnpackingTime += other.UnpackingTime
	d.SortingTime += other.SortingTime
	d.ClusteringTime += other.ClusteringTime
	d.WritingTime += other.WritingTime
	d.TotalTime += other.TotalTime
	d.FilesProcessed += other.FilesProcessed
}
