package animcurve

// ElemType identifies the element type of a host-supplied Array.
type ElemType int

const (
	// TypeNone is the element type of an empty, untyped array.
	TypeNone ElemType = iota

	// TypeFloat marks an array of floating-point elements.
	TypeFloat

	// TypeInt marks an array of integer elements.
	TypeInt
)

// String returns the element type name.
func (t ElemType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	default:
		return "none"
	}
}

// Array is a flat, typed parameter array as handed over by the host.
// The zero value is an empty array of TypeNone.
type Array struct {
	typ    ElemType
	floats []float64
	ints   []int
}

// Floats returns a float-typed Array holding v. The slice is not copied.
func Floats(v ...float64) Array {
	return Array{typ: TypeFloat, floats: v}
}

// Ints returns an int-typed Array holding v. The slice is not copied.
func Ints(v ...int) Array {
	return Array{typ: TypeInt, ints: v}
}

// Interpolations returns an int-typed Array of interpolation modes.
func Interpolations(modes ...Interpolation) Array {
	v := make([]int, len(modes))
	for i, m := range modes {
		v[i] = int(m)
	}
	return Ints(v...)
}

// Type returns the element type.
func (a Array) Type() ElemType {
	return a.typ
}

// Len returns the number of elements.
func (a Array) Len() int {
	switch a.typ {
	case TypeFloat:
		return len(a.floats)
	case TypeInt:
		return len(a.ints)
	default:
		return 0
	}
}

// Float returns element i of a float array.
func (a Array) Float(i int) float64 {
	return a.floats[i]
}

// Int returns element i of an int array.
func (a Array) Int(i int) int {
	return a.ints[i]
}

// usable reports whether a can supply one element of type typ per keyframe.
func (a Array) usable(typ ElemType, n int) bool {
	return a.typ == typ && a.Len() == n
}
