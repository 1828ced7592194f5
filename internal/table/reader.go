package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Data holds the populated columns of a parsed wind table. Velocity is
// kept per row so that readers can report on tables whose fourth column
// is not constant.
type Data struct {
	Times      []float64 // seconds
	Luminosity []float64 // erg/s
	Velocity   []float64 // cm/s
}

// Read parses a wind table from r, verifying the 63-column shape of
// every row. Blank trailing lines are ignored.
func Read(r io.Reader) (*Data, error) {
	data := &Data{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != Columns {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineNo, Columns, len(fields))
		}

		row := make([]float64, Columns)
		for col, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: invalid value %q: %w", lineNo, col+1, field, err)
			}
			row[col] = v
		}

		data.Times = append(data.Times, row[colTime])
		data.Luminosity = append(data.Luminosity, row[colLuminosity])
		data.Velocity = append(data.Velocity, row[colVelocity])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wind table: %w", err)
	}

	if len(data.Times) == 0 {
		return nil, fmt.Errorf("wind table is empty")
	}

	return data, nil
}

// ReadFile parses the named wind table file.
func ReadFile(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open wind table: %w", err)
	}
	defer file.Close()

	return Read(file)
}
