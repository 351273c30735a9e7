package setops

import (
	"fmt"

	"github.com/StudioSol/set"

	"github.com/astrogrind/crunch/pkg/core"
)

// IndexAnd returns the indices of the elements of x that are also present
// in y, by value. The result follows x's order, and every matching index is
// included when x holds duplicates of a y element.
// Float NaN never matches anything, itself included.
func IndexAnd[T comparable](x, y []T) []int {
	members := membership(y)

	idx := make([]int, 0, len(x))
	for i, xx := range x {
		if _, ok := members[xx]; ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// IndexNot returns the indices of the elements of x that are NOT present
// in y. Together with IndexAnd it partitions range(len(x)).
func IndexNot[T comparable](x, y []T) []int {
	members := membership(y)

	idx := make([]int, 0, len(x))
	for i, xx := range x {
		if _, ok := members[xx]; !ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// AlignIndex returns, for each element of y, one index into x holding an
// equal value, in y's order, so that core.Take(x, idx) matches y elementwise.
// When x holds duplicates of a y element a single match is still returned;
// this implementation yields the lowest index, but callers should not rely
// on which duplicate is chosen.
// Returns an error wrapping core.ErrValueNotFound if a y element has no
// match in x.
func AlignIndex[T comparable](x, y []T) ([]int, error) {
	first := make(map[T]int, len(x))
	for i, xx := range x {
		if _, ok := first[xx]; !ok {
			first[xx] = i
		}
	}

	idx := make([]int, 0, len(y))
	for _, yy := range y {
		i, ok := first[yy]
		if !ok {
			return nil, fmt.Errorf("no match in x for %v: %w", yy, core.ErrValueNotFound)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// IndexAndStrings is IndexAnd specialized for label catalogs, such as
// matching object names between two observation tables.
func IndexAndStrings(x, y []string) []int {
	members := set.NewLinkedHashSetString(y...)

	idx := make([]int, 0, len(x))
	for i, name := range x {
		if members.InArray(name) {
			idx = append(idx, i)
		}
	}
	return idx
}

// IndexNotStrings is IndexNot specialized for label catalogs.
func IndexNotStrings(x, y []string) []int {
	members := set.NewLinkedHashSetString(y...)

	idx := make([]int, 0, len(x))
	for i, name := range x {
		if !members.InArray(name) {
			idx = append(idx, i)
		}
	}
	return idx
}

func membership[T comparable](y []T) map[T]struct{} {
	members := make(map[T]struct{}, len(y))
	for _, yy := range y {
		members[yy] = struct{}{}
	}
	return members
}
