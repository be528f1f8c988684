package field

import "strings"

// Lookup resolves a field-level validation message by dot-separated path in
// a nested error map, e.g. Lookup(errs, "owner.address.city"). Intermediate
// segments must be nested map[string]any values; the final segment may hold
// a string or an error. The engine never produces these maps itself, it
// only reads what the form-state collaborator exposes.
func Lookup(errs map[string]any, path string) (string, bool) {
	if len(errs) == 0 || path == "" {
		return "", false
	}
	segments := strings.Split(path, ".")
	current := errs
	for i, segment := range segments {
		raw, ok := current[segment]
		if !ok {
			return "", false
		}
		if i == len(segments)-1 {
			switch v := raw.(type) {
			case string:
				return v, true
			case error:
				return v.Error(), true
			default:
				return "", false
			}
		}
		nested, ok := raw.(map[string]any)
		if !ok {
			return "", false
		}
		current = nested
	}
	return "", false
}
