package style

// Flatten expands arbitrarily nested []any reference lists into a single
// list, preserving order.
func Flatten(refs []any) []any {
	out := make([]any, 0, len(refs))
	return flattenInto(refs, out)
}

func flattenInto(refs []any, out []any) []any {
	for _, ref := range refs {
		if nested, ok := ref.([]any); ok {
			out = flattenInto(nested, out)
			continue
		}
		out = append(out, ref)
	}
	return out
}
