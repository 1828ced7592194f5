package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkoskela/windgen/internal/wind"
)

func sampleTable() wind.Table {
	return wind.Table{
		Times:      []float64{0, 1.5e7, 3.0e7},
		Luminosity: []float64{0, -2.5e38, -8.1e39},
		Velocity:   1.0e8,
	}
}

func TestWriteShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTable()))

	out := buf.String()
	assert.False(t, strings.HasSuffix(out, "\n"), "table must not end with a newline")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		fields := strings.Fields(line)
		assert.Lenf(t, fields, Columns, "row %d", i+1)
	}
}

func TestWriteCellFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTable()))

	lines := strings.Split(buf.String(), "\n")

	// Non-negative values carry a leading space in place of the sign.
	assert.True(t, strings.HasPrefix(lines[0], " 0.00000000e+00"))

	fields := strings.Fields(lines[1])
	assert.Equal(t, "1.50000000e+07", fields[0])
	assert.Equal(t, "-2.50000000e+38", fields[1])
	assert.Equal(t, "1.00000000e+08", fields[3])

	// Every column other than time, luminosity and velocity is zero.
	for col, field := range fields {
		if col == 0 || col == 1 || col == 3 {
			continue
		}
		assert.Equalf(t, "0.00000000e+00", field, "column %d", col+1)
	}
}

func TestRoundTrip(t *testing.T) {
	tbl := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))

	data, err := Read(&buf)
	require.NoError(t, err)

	require.Len(t, data.Times, len(tbl.Times))
	for i := range tbl.Times {
		assert.InDelta(t, tbl.Times[i], data.Times[i], 1e-8*(1+tbl.Times[i]))
		if tbl.Luminosity[i] == 0 {
			assert.Zero(t, data.Luminosity[i])
		} else {
			assert.InEpsilon(t, tbl.Luminosity[i], data.Luminosity[i], 1e-8)
		}
		assert.InEpsilon(t, tbl.Velocity, data.Velocity[i], 1e-8)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wind_generated")
	require.NoError(t, WriteFile(path, sampleTable()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data.Times, 3)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: "empty",
		},
		{
			name:    "ragged row",
			input:   " 1.00000000e+00 2.00000000e+00",
			wantErr: "expected 63 columns, got 2",
		},
		{
			name:    "non-numeric cell",
			input:   strings.Repeat(" 0.00000000e+00", 62) + " bogus",
			wantErr: "invalid value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
