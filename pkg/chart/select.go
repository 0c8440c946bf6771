package chart

import (
	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/errors"
)

// ScatterLimit is the largest numeric pair plotted as individual points.
// Larger inputs are binned into a heat map.
const ScatterLimit = 5000

// Select chooses the encoding for a two-column plot from the element kinds
// of x and y and the element count n. Rules apply in order:
//
//  1. numeric x, numeric y, n <= ScatterLimit: Scatter
//  2. numeric x, numeric y, n >  ScatterLimit: HeatMap
//  3. numeric x, text y: BoxAndWhisker
//  4. text x, text y: CategoricalHeatMap
//
// Any other combination, including text x with numeric y, fails with
// AUTO_SELECTION_UNDEFINED.
func Select(x, y column.Kind, n int) (Kind, error) {
	switch {
	case x == column.KindNumeric && y == column.KindNumeric:
		if n <= ScatterLimit {
			return Scatter, nil
		}
		return HeatMap, nil
	case x == column.KindNumeric && y == column.KindText:
		return BoxAndWhisker, nil
	case x == column.KindText && y == column.KindText:
		return CategoricalHeatMap, nil
	}
	return Invalid, errors.New(errors.ErrCodeAutoSelectionUndefined,
		"no visualization for %s x and %s y; supported pairs are numeric/numeric, numeric/text and text/text", x, y)
}

// SelectColumns applies Select to two columns, using the length of x as the count.
func SelectColumns(x, y *column.Column) (Kind, error) {
	if x == nil || y == nil {
		return Invalid, errors.New(errors.ErrCodeInvalidInput, "both x and y columns are required")
	}
	return Select(x.Kind(), y.Kind(), x.Len())
}
