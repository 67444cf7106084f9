package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/lanl/HERMES/pkg/unpacker"
)

// Run executes the processing pipeline with fully resolved parameters: it
// prints the parameter block, drives the stage loop over the input file or
// directory, and prints the diagnostics the pipeline returns.
func Run(ctx context.Context, params unpacker.Parameters, pipe unpacker.Pipeline, logger *slog.Logger, out io.Writer) error {
	unpacker.RenderParameters(out, params)

	diag, err := unpacker.ProcessFiles(ctx, params, pipe, logger)
	if err != nil {
		logger.Error("Processing failed", slog.Any("error", err))
		return err
	}

	unpacker.RenderDiagnostics(out, diag)
	return nil
}
