// Package column provides the read-only data inputs for plotting.
//
// A [Column] wraps a single Apache Arrow array and classifies its element
// type into a [Kind]: numeric (signed, unsigned and floating-point types),
// textual (string and large string) or unsupported. Chart selection is a
// function of these kinds and the element count, never of the values.
//
// A [Table] groups equal-length named columns in an Arrow record. Tables
// feed the columnwise summary and are how the CLI loads CSV files:
//
//	f, _ := os.Open("pets.csv")
//	t, err := column.ReadCSV(f)
//	if err != nil {
//	    return err
//	}
//	defer t.Release()
//	x, _ := t.Lookup("animal")
//
// Columns are never mutated by this module.
package column
