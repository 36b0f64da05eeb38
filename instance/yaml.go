package instance

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
	"q.log/bigm/model"
)

// Document is the YAML layout of a problem:
//
//	sense: minimize
//	objective: [4, 1]
//	constraints:
//	  - {coefficients: [3, 1], sign: "=", rhs: 3}
//	  - {coefficients: [4, 3], sign: ">=", rhs: 6}
//	unrestricted: [false, true]
type Document struct {
	Sense        string       `yaml:"sense,omitempty"`
	Objective    []float64    `yaml:"objective"`
	Constraints  []Constraint `yaml:"constraints"`
	Unrestricted []bool       `yaml:"unrestricted,omitempty"`
}

type Constraint struct {
	Coefficients []float64 `yaml:"coefficients"`
	Sign         string    `yaml:"sign,omitempty"`
	RHS          float64   `yaml:"rhs"`
}

func ParseYAML(in io.Reader) (*model.Problem, error) {
	var doc Document
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "instance: decoding yaml")
	}
	return doc.Problem()
}

// Problem converts the document. Constraints without a sign are <=.
func (d *Document) Problem() (*model.Problem, error) {
	sense, err := model.ParseSense(d.Sense)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, len(d.Constraints))
	b := make([]float64, len(d.Constraints))
	signs := make([]string, len(d.Constraints))
	for i, con := range d.Constraints {
		rows[i] = con.Coefficients
		b[i] = con.RHS
		signs[i] = con.Sign
		if signs[i] == "" {
			signs[i] = "<="
		}
	}
	return assemble(d.Objective, rows, b, signs, d.Unrestricted, sense)
}

// NewDocument is the inverse of Document.Problem.
func NewDocument(p *model.Problem) *Document {
	d := &Document{
		Sense:     p.Sense.String(),
		Objective: mat.Row(nil, 0, p.C),
	}
	for i := range p.NumRows {
		d.Constraints = append(d.Constraints, Constraint{
			Coefficients: p.Row(i),
			Sign:         p.SignAt(i).String(),
			RHS:          p.B.At(i, 0),
		})
	}
	if p.NumFree() > 0 {
		d.Unrestricted = p.Unrestricted
	}
	return d
}

// WriteYAML encodes p as a Document.
func WriteYAML(w io.Writer, p *model.Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(p)); err != nil {
		return err
	}
	return enc.Close()
}
