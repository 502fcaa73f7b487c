package conf

// MergeDefaults flattens the given maps into a single map, prefixing
// every key with ns. Later maps win on conflicting keys.
func MergeDefaults[M ~map[string]V, V any](ns string, maps ...M) M {
	fullCap := 0
	for _, m := range maps {
		fullCap += len(m)
	}

	merged := make(M, fullCap)
	for _, m := range maps {
		for key, val := range m {
			merged[ns+"."+key] = val
		}
	}

	return merged
}

// Combine merges flat default maps into one. Later maps win.
func Combine(defaults ...DefaultConfig) DefaultConfig {
	combined := make(DefaultConfig)
	for _, d := range defaults {
		for key, val := range d {
			combined[key] = val
		}
	}

	return combined
}
