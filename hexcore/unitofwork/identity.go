package unitofwork

import "reflect"

// sameEntity reports whether a and b are the same tracked entity.
//
// Bucket membership is keyed by identity, not structural equality: two
// distinct pointer instances with equal fields are distinct entities.
// Pointer-like kinds compare by referent address; comparable value kinds
// fall back to ==, and uncomparable values never match each other.
func sameEntity(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)

	if av.Kind() != bv.Kind() {
		return false
	}

	switch av.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len() && av.Type() == bv.Type()
	}

	if av.Type() != bv.Type() || !av.Comparable() {
		return false
	}

	return a == b
}

func containsEntity(bucket []any, entity any) bool {
	for _, existing := range bucket {
		if sameEntity(existing, entity) {
			return true
		}
	}

	return false
}

// removeEntity drops the first identity match from bucket, preserving order.
func removeEntity(bucket []any, entity any) []any {
	for i, existing := range bucket {
		if sameEntity(existing, entity) {
			return append(bucket[:i:i], bucket[i+1:]...)
		}
	}

	return bucket
}
