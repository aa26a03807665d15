// Package args turns the process arguments into a validated plot
// configuration.
package args

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashcracky/plot/pkg/canvas"
	"github.com/hashcracky/plot/pkg/structs"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// logAxis is a value accepted by --log.
type logAxis int

const (
	logX logAxis = iota
	logY
	logCombined
)

// Parse reads the command line and returns the resulting configuration.
//
// The supported flags are:
//
//	-h, --help: always fails; help output is not implemented yet.
//	-d WxH: canvas width and height (default 72x40).
//	-l, --log x|y|c: logarithmic X axis, or log of the input values.
//	-m, --mode dot|count: rendering style.
//	-x: read X from the input instead of using the row number.
//	--cdf: plot the cumulative distribution of Y.
//
// Args:
// args: []string - Process arguments without the program name.
//
// Returns:
// *structs.Config - The validated configuration.
// error - The first malformed argument or flag conflict.
func Parse(args []string) (*structs.Config, error) {
	slog.Debug("CLI parser started.", "count", len(args))

	cfg := structs.DefaultConfig()
	lx := NewLexer(args)

	for {
		arg, ok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if arg.Kind == Positional {
			return nil, unexpected(arg)
		}

		switch arg.String() {
		case "-h", "--help":
			return nil, ErrHelp
		case "-d":
			value, err := lx.Value()
			if err != nil {
				return nil, err
			}
			width, height, err := parseDimensions(value)
			if err != nil {
				return nil, err
			}
			cfg.Width, cfg.Height = width, height
		case "-l", "--log":
			value, err := lx.Value()
			if err != nil {
				return nil, err
			}
			axis, err := parseLogAxis(value)
			if err != nil {
				return nil, err
			}
			switch axis {
			case logX:
				cfg.LogX = true
			case logY:
				cfg.LogY = true
			case logCombined:
				return nil, ErrLogCombined
			}
		case "-m", "--mode":
			value, err := lx.Value()
			if err != nil {
				return nil, err
			}
			mode, err := parseMode(value)
			if err != nil {
				return nil, err
			}
			cfg.Mode = mode
		case "-x":
			cfg.XIsRow = false
		case "--cdf":
			cfg.CDF = true
		default:
			return nil, unexpected(arg)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	slog.Debug("Arguments parsed successfully.", "config", cfg)
	return &cfg, nil
}

// Validate checks the flag combinations that only make sense together.
//
// Args:
// cfg: structs.Config - Configuration to check.
//
// Returns:
// error - ErrCDFExplicitX or ErrCDFLogX if --cdf conflicts with another flag.
func Validate(cfg structs.Config) error {
	if !cfg.CDF {
		return nil
	}
	if !cfg.XIsRow {
		return ErrCDFExplicitX
	}
	if cfg.LogX {
		return ErrCDFLogX
	}
	// LogY stays allowed: it applies to the input values, not the CDF output.
	return nil
}

// parseDimensions parses a -d value of the form WxH. Only the first x
// separates the halves.
//
// Args:
// value: string - Raw -d value.
//
// Returns:
// int - Width.
// int - Height.
// error - ErrInvalidCharacters, ErrDimensionFormat, ErrWidth or ErrHeight.
func parseDimensions(value string) (int, int, error) {
	if _, _, err := transform.String(encoding.UTF8Validator, value); err != nil {
		return 0, 0, ErrInvalidCharacters
	}

	w, h, ok := strings.Cut(value, "x")
	if !ok {
		return 0, 0, ErrDimensionFormat
	}

	width, err := parseSize(w)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrWidth, err)
	}

	height, err := parseSize(h)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrHeight, err)
	}

	return width, height, nil
}

// parseSize accepts an optional leading + like the usual unsigned decimal
// form.
func parseSize(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%q must be positive", s)
	}
	return int(n), nil
}

func parseLogAxis(value string) (logAxis, error) {
	switch value {
	case "x":
		return logX, nil
	case "y":
		return logY, nil
	case "c":
		return logCombined, nil
	default:
		return 0, ErrLogAxis
	}
}

func parseMode(value string) (canvas.Mode, error) {
	switch value {
	case "dot":
		return canvas.Dot, nil
	case "count":
		return canvas.Count, nil
	default:
		return 0, ErrMode
	}
}

func unexpected(arg Arg) error {
	return fmt.Errorf("%w %q", ErrUnexpectedArgument, arg.String())
}
