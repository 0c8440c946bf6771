package column

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Kind classifies the element type of a column for chart selection.
type Kind int

const (
	// KindUnsupported covers every Arrow type that is neither numeric nor textual.
	KindUnsupported Kind = iota
	KindNumeric
	KindText
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "unsupported"
	}
}

// KindOf maps an Arrow data type to a column kind.
func KindOf(dt arrow.DataType) Kind {
	if dt == nil {
		return KindUnsupported
	}
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT32, arrow.FLOAT64:
		return KindNumeric
	case arrow.STRING, arrow.LARGE_STRING:
		return KindText
	default:
		return KindUnsupported
	}
}

// Column is an ordered, homogeneous, read-only sequence of values.
// It holds a reference on the underlying Arrow array until Release is called.
type Column struct {
	name string
	arr  arrow.Array
}

// FromArrow wraps an existing Arrow array. The array is retained.
func FromArrow(name string, arr arrow.Array) *Column {
	arr.Retain()
	return &Column{name: name, arr: arr}
}

// Float64s builds a numeric column from a slice of floats.
func Float64s(vals []float64) *Column {
	b := array.NewFloat64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return &Column{arr: b.NewArray()}
}

// Int64s builds a numeric column from a slice of integers.
func Int64s(vals []int64) *Column {
	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return &Column{arr: b.NewArray()}
}

// Strings builds a textual column from a slice of strings.
func Strings(vals []string) *Column {
	b := array.NewStringBuilder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return &Column{arr: b.NewArray()}
}

// Named returns a column sharing the same data under a new name.
func (c *Column) Named(name string) *Column {
	return FromArrow(name, c.arr)
}

// Name returns the column name, empty for anonymous columns.
func (c *Column) Name() string { return c.name }

// Len returns the number of elements.
func (c *Column) Len() int { return c.arr.Len() }

// Kind returns the element kind.
func (c *Column) Kind() Kind { return KindOf(c.arr.DataType()) }

// Type returns the Arrow data type.
func (c *Column) Type() arrow.DataType { return c.arr.DataType() }

// Array returns the underlying Arrow array without retaining it.
func (c *Column) Array() arrow.Array { return c.arr }

// Release drops the reference on the underlying array.
func (c *Column) Release() { c.arr.Release() }

// Values returns the column as JSON-ready values: int64, uint64, float64 or
// string, with nil for nulls. Unsupported types use Arrow's string form.
func (c *Column) Values() []any {
	out := make([]any, c.arr.Len())
	for i := range out {
		if c.arr.IsNull(i) {
			continue
		}
		out[i] = valueAt(c.arr, i)
	}
	return out
}

func valueAt(arr arrow.Array, i int) any {
	switch a := arr.(type) {
	case *array.Int8:
		return int64(a.Value(i))
	case *array.Int16:
		return int64(a.Value(i))
	case *array.Int32:
		return int64(a.Value(i))
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return uint64(a.Value(i))
	case *array.Uint16:
		return uint64(a.Value(i))
	case *array.Uint32:
		return uint64(a.Value(i))
	case *array.Uint64:
		return a.Value(i)
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	default:
		return arr.ValueStr(i)
	}
}
