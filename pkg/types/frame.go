// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Frame is a row-aligned, column-oriented table. Columns are either string
// or float64 valued and keep their insertion order. Every operation
// preserves row count and row order; only the column set changes.
type Frame struct {
	names []string
	strs  map[string][]string
	nums  map[string][]float64
	rows  int
}

// NewFrame creates an empty frame that will hold rows rows.
func NewFrame(rows int) *Frame {
	return &Frame{
		strs: make(map[string][]string),
		nums: make(map[string][]float64),
		rows: rows,
	}
}

// Rows returns the number of rows in the frame.
func (f *Frame) Rows() int { return f.rows }

// Names returns the column names in insertion order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Has reports whether the frame contains a column with the given name.
func (f *Frame) Has(name string) bool {
	_, s := f.strs[name]
	_, n := f.nums[name]
	return s || n
}

// AddStringColumn appends a string column. The value count must match the
// frame's row count and the name must be new.
func (f *Frame) AddStringColumn(name string, values []string) error {
	if err := f.checkAdd(name, len(values)); err != nil {
		return err
	}
	f.strs[name] = values
	f.names = append(f.names, name)
	return nil
}

// AddFloatColumn appends a numeric column. The value count must match the
// frame's row count and the name must be new.
func (f *Frame) AddFloatColumn(name string, values []float64) error {
	if err := f.checkAdd(name, len(values)); err != nil {
		return err
	}
	f.nums[name] = values
	f.names = append(f.names, name)
	return nil
}

// SetFloatColumn replaces the values of an existing numeric column in place,
// keeping its position in the column order.
func (f *Frame) SetFloatColumn(name string, values []float64) error {
	if _, ok := f.nums[name]; !ok {
		return fmt.Errorf("no numeric column %q", name)
	}
	if len(values) != f.rows {
		return fmt.Errorf("column %q: %d values for %d rows", name, len(values), f.rows)
	}
	f.nums[name] = values
	return nil
}

// Strings returns the values of a string column.
func (f *Frame) Strings(name string) ([]string, error) {
	v, ok := f.strs[name]
	if !ok {
		return nil, fmt.Errorf("no string column %q", name)
	}
	return v, nil
}

// Floats returns the values of a numeric column.
func (f *Frame) Floats(name string) ([]float64, error) {
	v, ok := f.nums[name]
	if !ok {
		return nil, fmt.Errorf("no numeric column %q", name)
	}
	return v, nil
}

// Drop removes the named columns. It is an error to drop a column the
// frame does not have.
func (f *Frame) Drop(names ...string) error {
	for _, name := range names {
		if !f.Has(name) {
			return fmt.Errorf("no column %q to drop", name)
		}
		delete(f.strs, name)
		delete(f.nums, name)
		for i, n := range f.names {
			if n == name {
				f.names = append(f.names[:i], f.names[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Matrix exports the frame as a row-major numeric matrix with columns in
// insertion order. It is an error if any string column remains.
func (f *Frame) Matrix() ([][]float64, error) {
	for _, name := range f.names {
		if _, ok := f.strs[name]; ok {
			return nil, fmt.Errorf("column %q is not numeric", name)
		}
	}
	out := make([][]float64, f.rows)
	for i := range out {
		row := make([]float64, len(f.names))
		for j, name := range f.names {
			row[j] = f.nums[name][i]
		}
		out[i] = row
	}
	return out, nil
}

func (f *Frame) checkAdd(name string, n int) error {
	if f.Has(name) {
		return fmt.Errorf("column %q already exists", name)
	}
	if n != f.rows {
		return fmt.Errorf("column %q: %d values for %d rows", name, n, f.rows)
	}
	return nil
}

// Labels is the ground-truth vector parallel to a Frame: one entry per row,
// 1 for fake and 0 for real. The feature pipeline never touches it.
type Labels []int

// Counts returns the number of real (0) and fake (1) labels.
func (l Labels) Counts() (realCount, fakeCount int) {
	for _, v := range l {
		if v == 1 {
			fakeCount++
		} else {
			realCount++
		}
	}
	return realCount, fakeCount
}
