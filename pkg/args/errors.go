package args

import "errors"

// Token stream errors. They are wrapped with the offending token, so match
// them with errors.Is.
var (
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrMissingValue       = errors.New("missing value")
	ErrUnexpectedValue    = errors.New("unexpected value")
)

// Option value errors. Their text is what the user sees.
var (
	ErrHelp              = errors.New("--help is not yet implemented")
	ErrInvalidCharacters = errors.New("-d argument contains invalid characters")
	ErrDimensionFormat   = errors.New("-d must be specified as WxH (eg, 72x40, which is the default)")
	ErrWidth             = errors.New("parse width in -d argument")
	ErrHeight            = errors.New("parse height in -d argument")
	ErrLogCombined       = errors.New("--log c is not yet supported")
	ErrLogAxis           = errors.New("--log takes x, y, or c")
	ErrMode              = errors.New("--mode takes dot (the default) or count")
)

// Conflicts between flags, reported after the whole command line is read.
var (
	ErrCDFExplicitX = errors.New("CDF is only over the Y value; an explicit X value will be ignored")
	ErrCDFLogX      = errors.New("CDF is only over the Y value and changes the axes; logarithmic X would have no effect")
)
