package value

// Equal reports structural equality: same variant, recursively equal
// payloads. Object equality ignores key order but not key set or the
// value under a shared key. Floats compare with ==, so NaN is not
// equal to itself. Cost grows with the nesting depth of the tree.
func Equal(a, b Value) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}

	switch a := a.(type) {
	case Int:
		other, ok := b.(Int)
		return ok && a == other
	case Float:
		other, ok := b.(Float)
		return ok && a == other
	case String:
		other, ok := b.(String)
		return ok && a == other
	case Boolean:
		other, ok := b.(Boolean)
		return ok && a == other
	case List:
		other, ok := b.(List)
		if !ok || len(a) != len(other) {
			return false
		}
		for i := range a {
			if !Equal(a[i], other[i]) {
				return false
			}
		}
		return true
	case Object:
		other, ok := b.(Object)
		if !ok || len(a) != len(other) {
			return false
		}
		for k, av := range a {
			bv, ok := other[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}

	return false
}
