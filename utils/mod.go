package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// InUnitInterval reports whether v lies in [0, 1].
func InUnitInterval[T constraints.Float](v T) bool {
	return v >= 0 && v <= 1
}
