package arffparser

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// classNames is the priority list searched, case-insensitively, when no
// explicit class index is supplied.
var classNames = []string{"class", "target", "label", "outcome"}

// ClassIndex resolves the class column heuristically: the first attribute
// whose name matches the priority list (class, target, label, outcome),
// else the last attribute. The returned index is 1-based.
func (r *Relation) ClassIndex() int {
	for _, want := range classNames {
		for i := range r.Attrs {
			if strings.EqualFold(r.Attrs[i].Name, want) {
				return i + 1
			}
		}
	}
	return len(r.Attrs)
}

// Dataset is the feature/label split of a relation around its class
// column. X and Y correspond 1:1 by row index to the relation's accepted
// rows; feature columns keep their declaration order.
type Dataset struct {
	Relation string
	Features []Attribute // attributes excluding the class column
	Class    Attribute
	X        [][]Value // one feature row per accepted data row
	Y        []Value   // the class column, one entry per row
}

// Dataset splits the relation's rows into features and labels. classIndex
// is 1-based; zero or negative means resolve heuristically via ClassIndex.
// An explicit index outside [1, len(Attrs)] is a *ClassIndexError.
func (r *Relation) Dataset(classIndex int) (*Dataset, error) {
	if classIndex > len(r.Attrs) {
		return nil, &ClassIndexError{Index: classIndex, Count: len(r.Attrs)}
	}
	if classIndex <= 0 {
		classIndex = r.ClassIndex()
	}
	c := classIndex - 1

	features := make([]Attribute, 0, len(r.Attrs)-1)
	features = append(features, r.Attrs[:c]...)
	features = append(features, r.Attrs[c+1:]...)

	x := make([][]Value, len(r.Rows))
	y := make([]Value, len(r.Rows))
	for i, row := range r.Rows {
		fv := make([]Value, 0, len(row)-1)
		fv = append(fv, row[:c]...)
		fv = append(fv, row[c+1:]...)
		x[i] = fv
		y[i] = row[c]
	}

	return &Dataset{
		Relation: r.Name,
		Features: features,
		Class:    r.Attrs[c],
		X:        x,
		Y:        y,
	}, nil
}

// FloatMatrix renders the feature rows as a dense numeric matrix: floats
// as themselves, integers and nominal ordinals widened, dates as Unix
// seconds, missing values as NaN. A string column is an error.
func (d *Dataset) FloatMatrix() (*mat.Dense, error) {
	rows, cols := len(d.X), len(d.Features)
	if rows == 0 || cols == 0 {
		return nil, &ParseError{Message: "dataset has no feature cells to render"}
	}

	data := make([]float64, rows*cols)
	for i, row := range d.X {
		for j, v := range row {
			if v.IsMissing() {
				data[i*cols+j] = math.NaN()
				continue
			}
			f, ok := v.Float64()
			if !ok {
				return nil, &ValueError{ParseError{
					Message: fmt.Sprintf("attribute %q: value %q has no numeric form", d.Features[j].Name, v.Raw),
				}}
			}
			data[i*cols+j] = f
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FloatLabels renders the label vector numerically under the same rules as
// FloatMatrix.
func (d *Dataset) FloatLabels() ([]float64, error) {
	out := make([]float64, len(d.Y))
	for i, v := range d.Y {
		if v.IsMissing() {
			out[i] = math.NaN()
			continue
		}
		f, ok := v.Float64()
		if !ok {
			return nil, &ValueError{ParseError{
				Message: fmt.Sprintf("attribute %q: value %q has no numeric form", d.Class.Name, v.Raw),
			}}
		}
		out[i] = f
	}
	return out, nil
}
