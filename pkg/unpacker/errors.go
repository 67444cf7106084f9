package unpacker

import "errors"

// Exported error variables. These represent the fatal failure categories of
// configuration resolution; callers can test against them using errors.Is.
// Field-level problems (a bad literal in the config file, an unparsable
// numeric flag argument, an out-of-range verbosity) are never returned as
// errors — they are logged and the prior value is retained.

var (
	// ErrConfigRead indicates the configuration file could not be opened.
	// A file that opens but contains bad assignments is not an error.
	ErrConfigRead = errors.New("failed to read configuration file")

	// ErrInputConflict indicates both an input file and an input directory
	// were supplied on the command line.
	ErrInputConflict = errors.New("cannot specify both an input file and an input directory")

	// ErrNoInputSource indicates no input file, input directory, or
	// configuration file was supplied, leaving the run with nothing to do.
	ErrNoInputSource = errors.New("no input source specified")

	// ErrBatchWithoutDir indicates batch mode was requested without an
	// input directory to enumerate.
	ErrBatchWithoutDir = errors.New("batch mode requires an input directory")

	// ErrInputFileMissing indicates the named input file cannot be opened
	// for reading.
	ErrInputFileMissing = errors.New("input file does not exist")

	// ErrBadExtension indicates the named input file does not carry the
	// required raw-file extension.
	ErrBadExtension = errors.New("input file has wrong extension")

	// ErrParameterValidation indicates resolved parameters failed a
	// semantic check before the pipeline could run.
	ErrParameterValidation = errors.New("invalid run parameters")
)
