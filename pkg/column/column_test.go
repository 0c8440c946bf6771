package column

import (
	"errors"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		dt   arrow.DataType
		want Kind
	}{
		{arrow.PrimitiveTypes.Int8, KindNumeric},
		{arrow.PrimitiveTypes.Int64, KindNumeric},
		{arrow.PrimitiveTypes.Uint32, KindNumeric},
		{arrow.PrimitiveTypes.Float32, KindNumeric},
		{arrow.PrimitiveTypes.Float64, KindNumeric},
		{arrow.BinaryTypes.String, KindText},
		{arrow.BinaryTypes.LargeString, KindText},
		{arrow.FixedWidthTypes.Boolean, KindUnsupported},
		{arrow.FixedWidthTypes.Date32, KindUnsupported},
		{nil, KindUnsupported},
	}

	for _, tt := range tests {
		if got := KindOf(tt.dt); got != tt.want {
			t.Errorf("KindOf(%v) = %v, want %v", tt.dt, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindNumeric.String() != "numeric" || KindText.String() != "text" || KindUnsupported.String() != "unsupported" {
		t.Error("unexpected Kind.String() values")
	}
}

func TestConstructors(t *testing.T) {
	f := Float64s([]float64{1.5, 2.5})
	defer f.Release()
	if f.Len() != 2 || f.Kind() != KindNumeric {
		t.Errorf("Float64s: len=%d kind=%v", f.Len(), f.Kind())
	}

	i := Int64s([]int64{1, 2, 3})
	defer i.Release()
	if i.Len() != 3 || i.Kind() != KindNumeric {
		t.Errorf("Int64s: len=%d kind=%v", i.Len(), i.Kind())
	}

	s := Strings([]string{"dog", "cat"})
	defer s.Release()
	if s.Len() != 2 || s.Kind() != KindText {
		t.Errorf("Strings: len=%d kind=%v", s.Len(), s.Kind())
	}
	if s.Name() != "" {
		t.Errorf("anonymous column name = %q", s.Name())
	}
}

func TestValues(t *testing.T) {
	s := Strings([]string{"a", "b"})
	defer s.Release()
	vals := s.Values()
	if len(vals) != 2 || vals[0] != "a" || vals[1] != "b" {
		t.Errorf("Values() = %v", vals)
	}

	i := Int64s([]int64{7})
	defer i.Release()
	if v := i.Values()[0]; v != int64(7) {
		t.Errorf("Int64 value = %#v, want int64(7)", v)
	}
}

func TestValuesNull(t *testing.T) {
	b := array.NewFloat64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.Append(1)
	b.AppendNull()
	arr := b.NewArray()
	defer arr.Release()

	c := FromArrow("v", arr)
	defer c.Release()

	vals := c.Values()
	if vals[0] != 1.0 {
		t.Errorf("vals[0] = %v, want 1", vals[0])
	}
	if vals[1] != nil {
		t.Errorf("vals[1] = %v, want nil", vals[1])
	}
}

func TestNamed(t *testing.T) {
	c := Strings([]string{"x"})
	defer c.Release()
	n := c.Named("animal")
	defer n.Release()

	if n.Name() != "animal" {
		t.Errorf("Name() = %q, want animal", n.Name())
	}
	if n.Array() != c.Array() {
		t.Error("Named should share the underlying array")
	}
}

func TestNewTable(t *testing.T) {
	x := Strings([]string{"dog", "cat"}).Named("animal")
	y := Float64s([]float64{1, 2}).Named("weight")

	tbl, err := NewTable(x, y)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	defer tbl.Release()

	if tbl.NumRows() != 2 || tbl.NumCols() != 2 {
		t.Errorf("shape = %dx%d, want 2x2", tbl.NumRows(), tbl.NumCols())
	}
	if got := strings.Join(tbl.Names(), ","); got != "animal,weight" {
		t.Errorf("Names() = %s", got)
	}
	col, ok := tbl.Lookup("weight")
	if !ok {
		t.Fatal("Lookup(weight) not found")
	}
	if col.Kind() != KindNumeric {
		t.Errorf("weight kind = %v", col.Kind())
	}
	if _, ok := tbl.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name string
		cols []*Column
	}{
		{"empty", nil},
		{"unnamed", []*Column{Strings([]string{"a"})}},
		{"duplicate", []*Column{Strings([]string{"a"}).Named("c"), Strings([]string{"b"}).Named("c")}},
		{"length mismatch", []*Column{Strings([]string{"a"}).Named("a"), Strings([]string{"a", "b"}).Named("b")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.cols...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	in := "animal,mood,age\ndog,happy,3\ncat,grumpy,5\ndog,grumpy,1\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	defer tbl.Release()

	if tbl.NumRows() != 3 {
		t.Errorf("NumRows() = %d, want 3", tbl.NumRows())
	}

	animal, _ := tbl.Lookup("animal")
	age, _ := tbl.Lookup("age")
	if animal.Kind() != KindText {
		t.Errorf("animal kind = %v, want text", animal.Kind())
	}
	if age.Kind() != KindNumeric {
		t.Errorf("age kind = %v, want numeric", age.Kind())
	}
}

func TestReadCSVEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no input", ""},
		{"header only", "x,y\n"},
		{"header without newline", "x,y"},
		{"header and blank lines", "x,y\n\n  \n"},
		{"crlf header only", "x,y\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ReadCSV(strings.NewReader(tt.input))
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("ReadCSV(%q) error = %v, want ErrEmptyInput", tt.input, err)
			}
			if tbl != nil {
				t.Errorf("ReadCSV(%q) returned a table", tt.input)
			}
		})
	}
}

func TestReadCSVSingleRow(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("x,y\n1,a"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	defer tbl.Release()
	if tbl.NumRows() != 1 || tbl.NumCols() != 2 {
		t.Errorf("shape = %dx%d, want 1x2", tbl.NumRows(), tbl.NumCols())
	}
}
