package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense rows x cols table of float64 values in row-major order.
//
// The shape is immutable once created; values are not.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a zero-filled rows x cols matrix.
//
// Panics if either dimension is not positive.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix.New: invalid shape %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Full creates a rows x cols matrix with every element set to v.
func Full(rows, cols int, v float64) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// Eye creates the n x n identity matrix.
func Eye(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// FromRows copies row data into a new Matrix.
//
// Returns ErrShapeMismatch if rows is empty, a row is empty, or the rows
// are ragged.
func FromRows(rows [][]float64) (*Matrix, error) {
	cols, err := ValidateRows(rows)
	if err != nil {
		return nil, err
	}
	m := New(len(rows), cols)
	for i, r := range rows {
		copy(m.data[i*cols:(i+1)*cols], r)
	}
	return m, nil
}

// ValidateRows checks that rows is a non-empty rectangular table and
// returns its common width.
func ValidateRows(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("no rows: %w", ErrShapeMismatch)
	}
	cols := len(rows[0])
	if cols == 0 {
		return 0, fmt.Errorf("row 0 is empty: %w", ErrShapeMismatch)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, fmt.Errorf("ragged rows: row %d has %d columns, want %d: %w",
				i, len(rows[i]), cols, ErrShapeMismatch)
		}
	}
	return cols, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// Len returns the number of elements.
func (m *Matrix) Len() int { return len(m.data) }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	m.checkIndex(i, 0)
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// ToRows copies the matrix into a freshly allocated [][]float64.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// ApproxEqual reports whether m and other have the same shape and every
// pair of elements differs by at most tol.
func (m *Matrix) ApproxEqual(other *Matrix, tol float64) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// CopyFrom overwrites m's values with src's. Shapes must match.
func (m *Matrix) CopyFrom(src *Matrix) error {
	if !m.SameShape(src) {
		return fmt.Errorf("copy: %s <- %s: %w", m.shapeString(), src.shapeString(), ErrShapeMismatch)
	}
	copy(m.data, src.data)
	return nil
}

func (m *Matrix) shapeString() string {
	return fmt.Sprintf("%dx%d", m.rows, m.cols)
}

// String renders the matrix one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString("\n ")
		}
		fmt.Fprintf(&sb, "%v", m.data[i*m.cols:(i+1)*m.cols])
	}
	sb.WriteString("]")
	return sb.String()
}
