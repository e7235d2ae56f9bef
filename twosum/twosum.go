// Package twosum locates a pair of elements summing to a target in one
// pass over an integer slice.
package twosum

// Integer matches the built-in integer kinds and their named derivatives.
// Floats are excluded: NaN never equals itself, which would break the
// complement lookup.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Find returns indices i < j of the first pair with nums[i]+nums[j] ==
// target, scanning left to right. An element cannot pair with itself,
// though equal values at distinct indices may. When no pair exists, ok is
// false and the indices are zero. Sums follow Go integer semantics, so
// unsigned types wrap around.
//
// Complexity: O(n) time, O(n) memory.
func Find[T Integer](nums []T, target T) (i, j int, ok bool) {
	// seen maps a value to the index of its latest occurrence left of j.
	seen := make(map[T]int, len(nums))
	for right, num := range nums {
		if left, found := seen[target-num]; found {
			return left, right, true
		}
		seen[num] = right
	}

	return 0, 0, false
}
