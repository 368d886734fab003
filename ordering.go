package priq

import "golang.org/x/exp/constraints"

//go:generate stringer -type=Ordering

// Ordering is the outcome of comparing two scores under a partial order.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equal
	Greater
	// Incomparable means neither score ranks before, after or alongside
	// the other.
	Incomparable
)

// Determinate reports whether o is one of Less, Equal or Greater.
func (o Ordering) Determinate() bool {
	return o >= Less && o <= Greater
}

// CompareFunc compares score a against score b.
type CompareFunc[S any] func(a, b S) Ordering

// Natural orders scores by the < and > operators. A score that is not equal
// to itself (a floating point NaN) is Incomparable with every score,
// including another NaN.
func Natural[S constraints.Ordered]() CompareFunc[S] {
	return func(a, b S) Ordering {
		switch {
		case a != a || b != b:
			return Incomparable
		case a < b:
			return Less
		case a > b:
			return Greater
		default:
			return Equal
		}
	}
}

// Total adapts a three-way function returning a negative number, zero or a
// positive number, such as cmp.Compare or time.Time.Compare. The result is
// never Incomparable.
func Total[S any](cmp func(a, b S) int) CompareFunc[S] {
	return func(a, b S) Ordering {
		switch c := cmp(a, b); {
		case c < 0:
			return Less
		case c > 0:
			return Greater
		default:
			return Equal
		}
	}
}

// Reverse inverts c, turning a min-heap into a max-heap.
func Reverse[S any](c CompareFunc[S]) CompareFunc[S] {
	return func(a, b S) Ordering {
		switch o := c(a, b); o {
		case Less:
			return Greater
		case Greater:
			return Less
		default:
			return o
		}
	}
}
