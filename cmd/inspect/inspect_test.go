package inspect

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkoskela/windgen/internal/conf"
	"github.com/jkoskela/windgen/internal/table"
	"github.com/jkoskela/windgen/internal/wind"
)

func writeSampleTable(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wind_generated")
	tbl := wind.Compute(wind.Params{
		FinalTime:    100.0,
		EjectionTime: 0.1,
		EjectedMass:  0.05,
		Velocity:     1000.0,
		Steps:        20,
	})
	require.NoError(t, table.WriteFile(path, tbl))
	return path
}

func TestInspectCommand(t *testing.T) {
	path := writeSampleTable(t)

	cmd := Command(&conf.Context{Settings: &conf.Settings{}})
	cmd.SetArgs([]string{path})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	report := out.String()
	assert.Contains(t, report, "Rows:         20")
	assert.Contains(t, report, "Columns:      63")
	assert.Contains(t, report, "Time range:   0.00000000e+00")
	assert.Contains(t, report, "v_ej:         1.00000000e+08 cm/s")
}

func TestInspectCommandMissingFile(t *testing.T) {
	cmd := Command(&conf.Context{Settings: &conf.Settings{}})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "no_such_table")})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open wind table")
}
