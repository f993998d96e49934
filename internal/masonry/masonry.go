// Package masonry distributes an ordered list of items into a fixed number
// of buckets for a masonry-style layout. Distribution is strict round-robin
// striping: the item at position p lands in bucket p mod K, so tall and short
// items spread evenly across tracks. It is not height-aware; true masonry
// packing would track accumulated size per bucket.
package masonry

import (
	"fmt"

	"lightgrid/internal/domain"
)

// Distribute stripes items across buckets round-robin. Bucket j holds the
// items at positions j, j+buckets, j+2*buckets, ... in their original order.
// A non-positive bucket count is a contract violation and returns
// domain.ErrInvalidArgument.
func Distribute[T any](items []T, buckets int) ([][]T, error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("bucket count must be positive, got %d: %w", buckets, domain.ErrInvalidArgument)
	}

	out := make([][]T, buckets)
	for j := range out {
		// ceil(n/k) for the first n%k buckets, floor for the rest
		size := len(items) / buckets
		if j < len(items)%buckets {
			size++
		}
		out[j] = make([]T, 0, size)
	}

	for p, item := range items {
		out[p%buckets] = append(out[p%buckets], item)
	}
	return out, nil
}

// DistributeClamped is the defensive variant for render paths: a
// non-positive bucket count is treated as 1 instead of failing.
func DistributeClamped[T any](items []T, buckets int) [][]T {
	if buckets <= 0 {
		buckets = 1
	}
	out, err := Distribute(items, buckets)
	if err != nil {
		// Unreachable after clamping.
		panic(err)
	}
	return out
}

// Orientation is re-exported for callers that configure bucket stacking.
// It has no effect on distribution; the view stacks buckets perpendicular
// to the chosen axis.
type Orientation = domain.Orientation
