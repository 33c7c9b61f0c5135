package value

// Merge combines base and overlay into a new value.
//
// Two objects merge key by key: keys only in base are kept, keys only in
// overlay are appended, and keys in both are merged recursively. Two arrays
// concatenate, base elements first, without deduplication. Any other pairing
// yields overlay. Neither input is modified.
func Merge(base, overlay Value) Value {
	switch {
	case base.kind == KindObject && overlay.kind == KindObject:
		return FromObject(MergeObjects(base.obj, overlay.obj))
	case base.kind == KindArray && overlay.kind == KindArray:
		arr := make([]Value, 0, len(base.arr)+len(overlay.arr))
		for _, e := range base.arr {
			arr = append(arr, e.Clone())
		}
		for _, e := range overlay.arr {
			arr = append(arr, e.Clone())
		}
		return Value{kind: KindArray, arr: arr}
	default:
		return overlay.Clone()
	}
}

// MergeObjects is Merge specialised to two objects.
func MergeObjects(base, overlay *Object) *Object {
	out := base.Clone()
	overlay.Range(func(k string, ov Value) bool {
		if bv, ok := out.Get(k); ok {
			out.Set(k, Merge(bv, ov))
		} else {
			out.Set(k, ov.Clone())
		}
		return true
	})
	return out
}
