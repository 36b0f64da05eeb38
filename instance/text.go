package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"q.log/bigm/model"
)

// ParseText reads the delimited text format:
//
//	# maximize 3x1 + 5x2
//	c: 3, 5
//	A: 1, 0
//	   0, 2
//	   3, 2
//	b: 4, 12, 18
//	sign: <=, <=, <=
//	unrestricted: F, F
//	maximize: true
//
// Every key holds a comma separated list. A lines may repeat, and lines
// without a key continue the constraint matrix. A single A line holding
// the whole matrix row by row is split into rows of len(c) entries. sign, unrestricted and
// maximize are optional.
func ParseText(in io.Reader) (*model.Problem, error) {
	var (
		c, b         []float64
		rows         [][]float64
		signs        []string
		unrestricted []bool
		sense        = model.Maximize
		key          string
	)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		value := line
		if k, v, ok := strings.Cut(line, ":"); ok {
			key = strings.ToLower(strings.TrimSpace(k))
			value = strings.TrimSpace(v)
		} else if key != "a" {
			return nil, errors.Errorf("instance: line %d: expected key: value", lineNo)
		}

		var err error
		switch key {
		case "c", "objective":
			c, err = parseFloats(value)
		case "a":
			if value == "" {
				continue
			}
			var row []float64
			row, err = parseFloats(value)
			rows = append(rows, row)
		case "b", "rhs":
			b, err = parseFloats(value)
		case "sign", "signs":
			signs = splitList(value)
		case "unrestricted":
			unrestricted, err = parseFlags(value)
		case "maximize":
			var maximize bool
			maximize, err = strconv.ParseBool(value)
			if !maximize {
				sense = model.Minimize
			}
		case "sense":
			sense, err = model.ParseSense(value)
		default:
			err = errors.Errorf("unknown key %q", key)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "instance: line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return assemble(c, reshape(rows, len(c)), b, signs, unrestricted, sense)
}

// reshape splits a single flat A line into rows of n coefficients.
func reshape(rows [][]float64, n int) [][]float64 {
	if len(rows) != 1 || n == 0 || len(rows[0]) == n || len(rows[0])%n != 0 {
		return rows
	}
	flat := rows[0]
	out := make([][]float64, 0, len(flat)/n)
	for i := 0; i < len(flat); i += n {
		out = append(out, flat[i:i+n])
	}
	return out
}

func assemble(c []float64, rows [][]float64, b []float64, signs []string, unrestricted []bool, sense model.Sense) (*model.Problem, error) {
	p, err := model.FromRows(c, rows, b)
	if err != nil {
		return nil, err
	}
	p.SetSense(sense)

	parsed, err := model.ParseSigns(signs)
	if err != nil {
		return nil, err
	}
	if err := p.SetSigns(parsed); err != nil {
		return nil, err
	}
	if err := p.SetUnrestricted(unrestricted); err != nil {
		return nil, err
	}
	return p, nil
}

func splitList(s string) []string {
	var out []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	fields := splitList(s)
	out := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseFlags accepts T/F as well as anything strconv.ParseBool does.
func parseFlags(s string) ([]bool, error) {
	fields := splitList(s)
	out := make([]bool, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseBool(field)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
