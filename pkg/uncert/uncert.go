// Package uncert pairs measurement arrays with their one-sigma errors and
// propagates uncertainties through elementwise arithmetic, assuming
// independent errors (quadrature rules).
package uncert

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/astrogrind/crunch/pkg/core"
)

// Numeric covers the plain number types a table column may hold.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Value is a single measurement with its one-sigma uncertainty.
type Value struct {
	Val float64
	Err float64
}

// Add returns v+w with errors combined in quadrature.
func (v Value) Add(w Value) Value {
	return Value{Val: v.Val + w.Val, Err: math.Hypot(v.Err, w.Err)}
}

// Sub returns v-w with errors combined in quadrature.
func (v Value) Sub(w Value) Value {
	return Value{Val: v.Val - w.Val, Err: math.Hypot(v.Err, w.Err)}
}

// Mul returns v*w. The error form sqrt((w·ev)²+(v·ew)²) stays finite when
// either value is zero.
func (v Value) Mul(w Value) Value {
	return Value{
		Val: v.Val * w.Val,
		Err: math.Hypot(w.Val*v.Err, v.Val*w.Err),
	}
}

// Div returns v/w. Division by a zero value is not guarded; the IEEE
// Inf/NaN result propagates to the caller.
func (v Value) Div(w Value) Value {
	return Value{
		Val: v.Val / w.Val,
		Err: math.Hypot(v.Err/w.Val, v.Val*w.Err/(w.Val*w.Val)),
	}
}

// Array pairs a values series with the matching uncertainties: index i in
// both slices refers to the same measured object.
type Array struct {
	Values []float64
	Errors []float64
}

// New builds an uncertainty array from a values slice and an errors slice
// of the same length. Both inputs are copied, so later writes to the
// caller's slices do not leak in.
func New(values, errs []float64) (Array, error) {
	if len(values) != len(errs) {
		return Array{}, fmt.Errorf("%d values vs %d errors: %w",
			len(values), len(errs), core.ErrLengthMismatch)
	}

	a := Array{
		Values: make([]float64, len(values)),
		Errors: make([]float64, len(errs)),
	}
	copy(a.Values, values)
	copy(a.Errors, errs)
	return a, nil
}

// FromNumeric converts plain numeric columns of any integer or float type
// to float64 arrays first, then builds the uncertainty array. Use it when
// values and errors come straight out of a parsed table.
func FromNumeric[V, E Numeric](values []V, errs []E) (Array, error) {
	fv := make([]float64, len(values))
	for i, v := range values {
		fv[i] = float64(v)
	}

	fe := make([]float64, len(errs))
	for i, e := range errs {
		fe[i] = float64(e)
	}

	return New(fv, fe)
}

// Len returns the number of value±error pairs.
func (a Array) Len() int {
	return len(a.Values)
}

// At returns the i-th value±error pair.
func (a Array) At(i int) Value {
	return Value{Val: a.Values[i], Err: a.Errors[i]}
}

// Add returns the elementwise sum of a and b with propagated errors.
func (a Array) Add(b Array) (Array, error) {
	return a.combine(b, Value.Add)
}

// Sub returns the elementwise difference of a and b with propagated errors.
func (a Array) Sub(b Array) (Array, error) {
	return a.combine(b, Value.Sub)
}

// Mul returns the elementwise product of a and b with propagated errors.
func (a Array) Mul(b Array) (Array, error) {
	return a.combine(b, Value.Mul)
}

// Div returns the elementwise quotient of a and b with propagated errors.
// Zero divisors produce non-finite entries, as with plain floats.
func (a Array) Div(b Array) (Array, error) {
	return a.combine(b, Value.Div)
}

// Scale returns a new array with every value multiplied by c and every
// error scaled by |c|.
func (a Array) Scale(c float64) Array {
	out := Array{
		Values: make([]float64, a.Len()),
		Errors: make([]float64, a.Len()),
	}
	floats.ScaleTo(out.Values, c, a.Values)
	floats.ScaleTo(out.Errors, math.Abs(c), a.Errors)
	return out
}

// WeightedMean combines all pairs into a single value using
// inverse-variance weights, the usual way repeated measurements of one
// quantity are averaged. Zero errors make the weights blow up; screening
// them out first is the caller's responsibility.
func (a Array) WeightedMean() Value {
	weights := make([]float64, a.Len())
	for i, e := range a.Errors {
		weights[i] = 1 / (e * e)
	}

	return Value{
		Val: stat.Mean(a.Values, weights),
		Err: math.Sqrt(1 / floats.Sum(weights)),
	}
}

func (a Array) combine(b Array, op func(Value, Value) Value) (Array, error) {
	if a.Len() != b.Len() {
		return Array{}, fmt.Errorf("operand lengths %d and %d: %w",
			a.Len(), b.Len(), core.ErrLengthMismatch)
	}

	out := Array{
		Values: make([]float64, a.Len()),
		Errors: make([]float64, a.Len()),
	}
	for i := range a.Values {
		v := op(a.At(i), b.At(i))
		out.Values[i] = v.Val
		out.Errors[i] = v.Err
	}
	return out, nil
}
