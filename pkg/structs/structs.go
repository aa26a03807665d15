// Package structs contains the model used by the application
package structs

import (
	"fmt"
	"log/slog"

	"github.com/hashcracky/plot/pkg/canvas"
)

// Default canvas dimensions, in output cells.
const (
	DefaultWidth  = 72
	DefaultHeight = 40
)

// Config holds all configuration options for the plot application.
//
// Args:
// LogX: bool - Plot the X axis on a logarithmic scale.
// LogY: bool - Take the log of each input value. Under CDF this applies to
// the values feeding the distribution, not to its output axis.
// XIsRow: bool - Use the row number as X. Cleared by -x, which reads X
// from the input columns instead.
// Width: int - Canvas width.
// Height: int - Canvas height.
// Mode: canvas.Mode - Rendering style.
// CDF: bool - Plot the cumulative distribution of the Y values.
//
// Returns:
// Config - Configuration object for the application.
type Config struct {
	LogX   bool
	LogY   bool
	XIsRow bool
	Width  int
	Height int
	Mode   canvas.Mode
	CDF    bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		XIsRow: true,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Mode:   canvas.Dot,
	}
}

// String renders the configuration as space separated key=value pairs.
func (c Config) String() string {
	return fmt.Sprintf(
		"width=%d height=%d mode=%s log_x=%t log_y=%t x_is_row=%t cdf=%t",
		c.Width, c.Height, c.Mode, c.LogX, c.LogY, c.XIsRow, c.CDF,
	)
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("width", c.Width),
		slog.Int("height", c.Height),
		slog.String("mode", c.Mode.String()),
		slog.Bool("log_x", c.LogX),
		slog.Bool("log_y", c.LogY),
		slog.Bool("x_is_row", c.XIsRow),
		slog.Bool("cdf", c.CDF),
	)
}
