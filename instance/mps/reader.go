// Package mps reads MPS files through GLPK. It needs the GLPK C library.
package mps

import (
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"q.log/bigm/instance"
	"q.log/bigm/model"
)

// Reader reads a mps file to construct a model
type Reader struct {
	filename string
	format   glpk.MPSFormat
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
		format:   glpk.MPS_FILE,
	}
}

// Fixed switches to the fixed-column MPS dialect.
func (r *Reader) Fixed() *Reader {
	r.format = glpk.MPS_DECK
	return r
}

// ConstructModelFromFile returns the problem stored in the file. Ranged
// rows become a >= and a <= row, columns that may go negative are flagged
// unrestricted and finite column bounds other than x >= 0 become extra rows.
func (r *Reader) ConstructModelFromFile() (*model.Problem, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(r.format, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "mps: reading %s", r.filename)
	}
	klog.V(2).Infof("mps: %s has %d rows, %d columns", r.filename, lp.NumRows(), lp.NumCols())

	numCols := lp.NumCols()
	if numCols == 0 || lp.NumRows() == 0 {
		return nil, errors.Wrapf(model.ErrShapeMismatch, "mps: %s has %d rows, %d columns", r.filename, lp.NumRows(), numCols)
	}

	//populate obj function
	cVec := make([]float64, numCols)
	for c := range numCols {
		cVec[c] = lp.ObjCoef(c + 1)
	}

	//populate constraints
	var rows [][]float64
	var rhs []float64
	var signs []model.Sign
	addRow := func(row []float64, sign model.Sign, b float64) {
		rows = append(rows, row)
		signs = append(signs, sign)
		rhs = append(rhs, b)
	}
	for row := 1; row <= lp.NumRows(); row++ {
		rowVec := make([]float64, numCols)
		idxs, vals := lp.MatRow(row)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = vals[i]
		}

		bounds := instance.RowBounds(lp.RowLB(row), lp.RowUB(row))
		if len(bounds) == 0 {
			klog.V(3).Infof("mps: skipping free row %d", row)
		}
		for _, bd := range bounds {
			addRow(append([]float64(nil), rowVec...), bd.Sign, bd.RHS)
		}
	}

	unrestricted := make([]bool, numCols)
	for c := range numCols {
		var bounds []instance.Bound
		unrestricted[c], bounds = instance.ColumnBounds(lp.ColLB(c+1), lp.ColUB(c+1))
		for _, bd := range bounds {
			rowVec := make([]float64, numCols)
			rowVec[c] = 1
			addRow(rowVec, bd.Sign, bd.RHS)
		}
	}

	p, err := model.FromRows(cVec, rows, rhs)
	if err != nil {
		return nil, errors.Wrap(err, r.filename)
	}
	if err := p.SetSigns(signs); err != nil {
		return nil, err
	}
	if err := p.SetUnrestricted(unrestricted); err != nil {
		return nil, err
	}
	if lp.ObjDir() == glpk.MAX {
		p.SetSense(model.Maximize)
	} else {
		p.SetSense(model.Minimize)
	}
	return p, nil
}
