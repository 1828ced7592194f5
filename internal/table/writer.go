// Package table reads and writes wind tables in the wind_m060 layout:
// 63 space separated columns per row, every value formatted as % .8e.
// Column 1 carries the time in seconds, column 2 the wind luminosity in
// erg/s and column 4 the constant ejection velocity in cm/s; all other
// columns are zero.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jkoskela/windgen/internal/wind"
)

// Columns is the fixed column count of the wind_m060 layout.
const Columns = 63

// Zero-based column indices of the populated columns.
const (
	colTime       = 0
	colLuminosity = 1
	colVelocity   = 3
)

// Write writes tbl to w, one row per grid sample. Rows are separated by
// a newline with no trailing newline after the last row, matching the
// reference wind_m060 tables.
func Write(w io.Writer, tbl wind.Table) error {
	bw := bufio.NewWriter(w)

	for i, t := range tbl.Times {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return fmt.Errorf("failed to write row separator: %w", err)
			}
		}
		for col := 0; col < Columns; col++ {
			var v float64
			switch col {
			case colTime:
				v = t
			case colLuminosity:
				v = tbl.Luminosity[i]
			case colVelocity:
				v = tbl.Velocity
			}
			if col > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return fmt.Errorf("failed to write column separator: %w", err)
				}
			}
			if _, err := fmt.Fprintf(bw, "% .8e", v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush wind table: %w", err)
	}
	return nil
}

// WriteFile writes tbl to the named file, creating or truncating it.
// If filename is an empty string the table is written to stdout.
func WriteFile(filename string, tbl wind.Table) error {
	var w io.Writer
	if filename == "" {
		w = os.Stdout
	} else {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer file.Close()
		w = file
	}

	return Write(w, tbl)
}
