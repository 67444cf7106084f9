package unpacker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/lanl/HERMES/pkg/util"
)

// ProcessFiles drives the pipeline over the resolved input: a single named
// file, or every raw file in the input folder when batch mode is active.
// Stages run synchronously, one file at a time; each stage is timed into
// the returned run-total Diagnostics.
//
// In batch mode a file that cannot be opened is logged and skipped; in
// single-file mode it is fatal. The context is checked between files.
func ProcessFiles(ctx context.Context, params Parameters, pipe Pipeline, logger *slog.Logger) (Diagnostics, error) {
	pipe = NewPipeline(pipe)

	files, err := inputFiles(params)
	if err != nil {
		return Diagnostics{}, err
	}

	var total Diagnostics
	start := time.Now()
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		diag, err := processOneFile(ctx, path, params, pipe)
		if err != nil {
			if params.BatchMode {
				logger.Warn("Skipping file", slog.String("path", path), slog.String("error", err.Error()))
				continue
			}
			return total, err
		}
		if params.VerboseLevel >= 1 {
			logger.Info("Processed file", slog.String("path", path),
				slog.Int64("dataPackets", diag.DataPackets))
		}
		total.Merge(diag)
	}
	total.TotalTime = time.Since(start)
	return total, nil
}

// inputFiles resolves the list of files to process. Batch mode lists every
// file in RawFolder carrying the raw extension, sorted by name for a
// deterministic processing order.
func inputFiles(params Parameters) ([]string, error) {
	if !params.BatchMode {
		return []string{filepath.Join(params.RawFolder, params.RawFile)}, nil
	}
	entries, err := os.ReadDir(params.RawFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot list input directory %s: %w", ErrParameterValidation, params.RawFolder, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !util.HasExtension(e.Name(), RawFileExtension) {
			continue
		}
		files = append(files, filepath.Join(params.RawFolder, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// processOneFile runs the stage loop for a single input file, timing each
// stage into the per-file record.
func processOneFile(ctx context.Context, path string, params Parameters, pipe Pipeline) (Diagnostics, error) {
	f, err := os.Open(path)
	if err != nil {
		return Diagnostics{}, err
	}
	defer f.Close()

	var diag Diagnostics

	begin := time.Now()
	signals, err := pipe.Unpacker.Unpack(ctx, f, params, &diag)
	diag.UnpackingTime = time.Since(begin)
	if err != nil {
		return diag, fmt.Errorf("unpacking %s: %w", path, err)
	}

	if params.SortSignals {
		begin = time.Now()
		pipe.Sorter.Sort(signals)
		diag.SortingTime = time.Since(begin)
	}

	var photons []Photon
	if params.ClusterPixels {
		begin = time.Now()
		photons = pipe.Clusterer.Cluster(params, signals)
		diag.ClusteringTime = time.Since(begin)
	}

	begin = time.Now()
	if params.WriteRawSignals {
		if err := pipe.RawWriter.WriteSignals(params, signals); err != nil {
			return diag, fmt.Errorf("writing raw signals for %s: %w", path, err)
		}
	}
	if params.WriteOutPhotons {
		if err := pipe.PhotonWriter.WritePhotons(params, photons); err != nil {
			return diag, fmt.Errorf("writing photons for %s: %w", path, err)
		}
	}
	diag.WritingTime = time.Since(begin)

	if params.FillHistograms {
		if err := pipe.Histogrammer.Fill(params, signals); err != nil {
			return diag, fmt.Errorf("filling histograms for %s: %w", path, err)
		}
	}

	diag.FilesProcessed = 1
	return diag, nil
}
