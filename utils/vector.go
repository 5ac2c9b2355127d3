package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense with chainable methods so that
// coordinate pipelines read left to right.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	var m *mat.VecDense
	if len(dataO) != 0 {
		m = mat.NewVecDense(n, dataO[0])
	} else {
		m = mat.NewVecDense(n, make([]float64, n))
	}
	return Vector{m}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// DataP returns the backing slice, not a copy.
func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

// Chainable methods mutate in place and return the receiver.

func (v Vector) Set(val float64) Vector {
	data := v.V.RawVector().Data
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Linspace(xmin, xmax float64) Vector {
	var (
		data = v.V.RawVector().Data
		N    = len(data)
	)
	if N == 1 {
		data[0] = xmin
		return v
	}
	h := (xmax - xmin) / float64(N-1)
	for i := range data {
		data[i] = xmin + float64(i)*h
	}
	data[N-1] = xmax
	return v
}

func (v Vector) Scale(a float64) Vector {
	data := v.V.RawVector().Data
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	data := v.V.RawVector().Data
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	data := v.V.RawVector().Data
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

// Allocating methods return a new Vector.

func (v Vector) Copy() Vector {
	return Vector{mat.VecDenseCopyOf(v.V)}
}

func (v Vector) Reversed() Vector {
	var (
		data = v.V.RawVector().Data
		N    = len(data)
		d    = make([]float64, N)
	)
	for i, val := range data {
		d[N-1-i] = val
	}
	return NewVector(N, d)
}

func (v Vector) Concat(w Vector) Vector {
	var (
		n1, n2 = v.Len(), w.Len()
		d      = make([]float64, n1+n2)
	)
	copy(d, v.V.RawVector().Data)
	copy(d[n1:], w.V.RawVector().Data)
	return NewVector(n1+n2, d)
}

// DropLast removes the trailing element, used to elide a duplicated
// seam point when closing a surface loop.
func (v Vector) DropLast() Vector {
	N := v.Len() - 1
	d := make([]float64, N)
	copy(d, v.V.RawVector().Data[:N])
	return NewVector(N, d)
}

func (v Vector) Min() (min float64) {
	data := v.V.RawVector().Data
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	data := v.V.RawVector().Data
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
