package entities

import (
	"slices"
	"strings"
)

// CompareEntries orders entries by LastActivityTime descending, then by
// Name ascending (byte-wise). It returns a negative number when a sorts
// before b, a positive number when after, and zero only for equal names
// with equal times.
func CompareEntries(a, b RepoEntry) int {
	switch {
	case a.LastActivityTime > b.LastActivityTime:
		return -1
	case a.LastActivityTime < b.LastActivityTime:
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// SortEntries sorts entries in place, most recently active first.
func SortEntries(entries []RepoEntry) {
	slices.SortStableFunc(entries, CompareEntries)
}
