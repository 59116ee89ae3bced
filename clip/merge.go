package clip

import "encoding/json"

// toBody round-trips a request document through its JSON form so callers can
// compose it with merge-patch fragments.
func toBody(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}

// MergePatch applies patch onto base and returns base. Objects merge key by
// key recursively, arrays and scalars are replaced wholesale, and an explicit
// null removes the key. This matches the merge-patch semantics the bridge
// applies to update bodies, so the cached view of a resource stays aligned
// with what the bridge itself would compute.
func MergePatch(base, patch map[string]any) map[string]any {
	if base == nil {
		base = map[string]any{}
	}
	for key, patchVal := range patch {
		if patchVal == nil {
			delete(base, key)
			continue
		}
		patchObj, ok := patchVal.(map[string]any)
		if !ok {
			base[key] = patchVal
			continue
		}
		baseObj, ok := base[key].(map[string]any)
		if !ok {
			// A non-object value is replaced by the patch applied to an
			// empty object, which also strips the patch's nulls.
			baseObj = map[string]any{}
		}
		base[key] = MergePatch(baseObj, patchObj)
	}
	return base
}
