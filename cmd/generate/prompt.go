package generate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jkoskela/windgen/internal/conf"
)

// promptMissing asks for each physical input that was not supplied by
// flag or config file and parses the reply from in.
func promptMissing(in io.Reader, out io.Writer, w *conf.WindConfig) error {
	prompts := []struct {
		label string
		value *float64
	}{
		{"t_f [y]", &w.FinalTime},
		{"t_ej [y]", &w.EjectionTime},
		{"M_ej [Msun]", &w.EjectedMass},
		{"v_ej [km/s]", &w.Velocity},
	}

	reader := bufio.NewReader(in)
	for _, p := range prompts {
		if !math.IsNaN(*p.value) {
			continue
		}

		if _, err := fmt.Fprintf(out, "%s: ", p.label); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return fmt.Errorf("failed to read %s: %w", p.label, err)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", p.label, err)
		}
		*p.value = v
	}

	return nil
}
