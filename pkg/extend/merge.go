package extend

import "github.com/alexisbeaulieu97/themestyle/pkg/style"

// DeepMerge returns a new map holding base overlaid with ext. Nested mappings
// merge recursively, lists concatenate, and ext wins every other conflict.
// Neither input is modified.
func DeepMerge(base, ext style.StyleMap) style.StyleMap {
	return style.StyleMap(mergeMaps(map[string]any(base), map[string]any(ext)))
}

func mergeMaps(base, ext map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(ext))
	for key, value := range base {
		out[key] = clone(value)
	}

	for key, value := range ext {
		existing, ok := out[key]
		if !ok {
			out[key] = clone(value)
			continue
		}
		out[key] = mergeValue(existing, value)
	}
	return out
}

func mergeValue(base, ext any) any {
	if baseMap, ok := style.AsMap(base); ok {
		if extMap, ok := style.AsMap(ext); ok {
			return mergeMaps(baseMap, extMap)
		}
	}
	if baseList, ok := base.([]any); ok {
		if extList, ok := ext.([]any); ok {
			merged := make([]any, 0, len(baseList)+len(extList))
			merged = append(merged, baseList...)
			for _, item := range extList {
				merged = append(merged, clone(item))
			}
			return merged
		}
	}
	return clone(ext)
}

func clone(value any) any {
	if m, ok := style.AsMap(value); ok {
		out := make(map[string]any, len(m))
		for key, v := range m {
			out[key] = clone(v)
		}
		return out
	}
	if list, ok := value.([]any); ok {
		out := make([]any, len(list))
		for i, v := range list {
			out[i] = clone(v)
		}
		return out
	}
	return value
}
