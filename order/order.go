package order

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNotOrdered signals that two keys have no known ordering.
var ErrNotOrdered = errors.New("order: keys are not ordered")

// Comparator compares two keys. It returns a negative number if a < b, zero
// if a and b are equivalent, and a positive number if a > b.
//
// Comparators have to implement a strict weak order over every set of keys
// they do not fail for. A comparator may fail, in which case the operation
// which called it is aborted and the error is handed to the client.
type Comparator[K any] func(a, b K) (int, error)

// Natural returns the comparator for Go's standard ordering of K.
// It never fails.
func Natural[K cmp.Ordered]() Comparator[K] {
	return func(a, b K) (int, error) {
		return cmp.Compare(a, b), nil
	}
}

// Func lifts an infallible three-way compare function to a Comparator.
func Func[K any](compare func(a, b K) int) Comparator[K] {
	if compare == nil {
		return nil
	}
	return func(a, b K) (int, error) {
		return compare(a, b), nil
	}
}

// Less creates a Comparator from a strict weak order predicate, reporting
// whether a is in increasing order with b. Keys a and b are equivalent if
// neither is less than the other.
func Less[K any](less func(a, b K) bool) Comparator[K] {
	if less == nil {
		return nil
	}
	return func(a, b K) (int, error) {
		switch {
		case less(a, b):
			return -1, nil
		case less(b, a):
			return 1, nil
		}
		return 0, nil
	}
}

// Reverse returns a comparator with the ordering of c inverted.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	if c == nil {
		return nil
	}
	return func(a, b K) (int, error) {
		r, err := c(a, b)
		return -r, err
	}
}

// CaseInsensitive orders strings by their Unicode case folding. Strings which
// differ only in case, like "ABC" and "abc", are equivalent.
func CaseInsensitive() Comparator[string] {
	fold := cases.Fold()
	return func(a, b string) (int, error) {
		return strings.Compare(fold.String(a), fold.String(b)), nil
	}
}

// Collation orders strings according to the collation rules of a language.
// Options are passed on to the collator, e.g. collate.IgnoreCase.
//
// The returned comparator carries collation buffers and must not be shared
// between goroutines.
func Collation(tag language.Tag, opts ...collate.Option) Comparator[string] {
	coll := collate.New(tag, opts...)
	return func(a, b string) (int, error) {
		return coll.CompareString(a, b), nil
	}
}

// Dynamic returns a comparator which discovers a natural ordering at runtime.
// It supports keys with a method
//
//	Compare(K) int
//
// (as time.Time has), byte slices, booleans and all types whose underlying
// kind is an integer, float or string. Everything else, including mixed
// dynamic types for interface keys, fails with ErrNotOrdered.
//
// Dynamic is the default ordering of zero-value containers, where no
// compile-time ordering constraint is available.
func Dynamic[K any]() Comparator[K] {
	return func(a, b K) (int, error) {
		if c, ok := any(a).(interface{ Compare(K) int }); ok {
			return c.Compare(b), nil
		}
		return compareAny(any(a), any(b))
	}
}

func compareAny(a, b any) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: nil key", ErrNotOrdered)
	}
	switch x := a.(type) {
	case int:
		return compareAs(x, b)
	case int64:
		return compareAs(x, b)
	case int32:
		return compareAs(x, b)
	case uint:
		return compareAs(x, b)
	case uint64:
		return compareAs(x, b)
	case uint32:
		return compareAs(x, b)
	case float64:
		return compareAs(x, b)
	case string:
		return compareAs(x, b)
	case []byte:
		y, ok := b.([]byte)
		if !ok {
			return 0, mismatch(a, b)
		}
		return bytes.Compare(x, y), nil
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, mismatch(a, b)
		}
		return compareBool(x, y), nil
	}
	return compareKinds(a, b)
}

func compareAs[T cmp.Ordered](x T, b any) (int, error) {
	y, ok := b.(T)
	if !ok {
		return 0, mismatch(x, b)
	}
	return cmp.Compare(x, y), nil
}

// compareKinds handles named types like `type Celsius float32` by their
// underlying kind.
func compareKinds(a, b any) (int, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return 0, mismatch(a, b)
	}
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float()), nil
	case reflect.String:
		return strings.Compare(va.String(), vb.String()), nil
	case reflect.Bool:
		return compareBool(va.Bool(), vb.Bool()), nil
	}
	tracer().Debugf("dynamic ordering: no ordering for type %T", a)
	return 0, fmt.Errorf("%w: type %T", ErrNotOrdered, a)
}

func compareBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	}
	return 1
}

func mismatch(a, b any) error {
	return fmt.Errorf("%w: cannot compare %T with %T", ErrNotOrdered, a, b)
}
