// Package instance reads linear programs from files.
package instance

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"q.log/bigm/model"
)

// Format names an input file format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatMPS  Format = "mps"
)

// ErrUnknownFormat is returned for a format this package cannot decode.
var ErrUnknownFormat = errors.New("instance: unknown format")

// DetectFormat guesses the format of a file from its extension. Anything
// that is not YAML or MPS is read as delimited text.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".mps":
		return FormatMPS
	}
	return FormatText
}

// Reader reads a problem file to construct a model.
type Reader struct {
	filename string
	format   Format
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
		format:   DetectFormat(filename),
	}
}

// WithFormat overrides the detected format.
func (r *Reader) WithFormat(f Format) *Reader {
	r.format = f
	return r
}

// ConstructModelFromFile parses the file into a problem.
func (r *Reader) ConstructModelFromFile() (*model.Problem, error) {
	f, err := os.Open(r.filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f, r.format)
	if err != nil {
		return nil, errors.Wrap(err, r.filename)
	}
	return p, nil
}

// Decode reads a problem in the given format. MPS files are handled by the
// mps subpackage because they need GLPK.
func Decode(in io.Reader, f Format) (*model.Problem, error) {
	switch f {
	case FormatText:
		return ParseText(in)
	case FormatYAML:
		return ParseYAML(in)
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
}
