// Package sparse provides a sparse set data structure for efficient membership
// testing with O(1) clear.
//
// The match engine's state vectors (engine/statevec.go) use one of these
// each to track which slots hold an active thread, in insertion order.
// O(1) Clear lets every input byte start from an empty vector without
// zeroing the whole universe.
package sparse

// SparseSet is a set of uint32 values that supports O(1) insertion,
// membership testing, and clearing. It maintains both a sparse array (for
// membership testing) and a dense array (for iteration). The sparse array
// maps values to indices in the dense array.
//
// This implementation is optimized for cases where the universe of possible
// values is known and relatively small (e.g., program positions in a
// compiled regex program).
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values
	size   uint32   // Current number of elements
}

// NewSparseSet creates a new sparse set with the given capacity.
// The capacity represents the maximum value that can be stored (exclusive).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
		size:   0,
	}
}

// Insert adds a value to the set and reports whether it was newly added.
// A false return means value was already a member. Panics if value is out
// of range for the capacity given to NewSparseSet/Resize.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}

	// Add to dense array
	s.dense = append(s.dense, value)
	// Map value to its index in dense
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains returns true if the value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if len(s.sparse) > 0x7FFFFFFF {
		return false // len too large for safe conversion
	}
	//nolint:gosec // G115: len is checked above for safe conversion to uint32
	sparseLen := uint32(len(s.sparse))
	if value >= sparseLen {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements from the set in O(1) time. The backing arrays
// are reused, so a set cleared on every input byte never reallocates.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// IsEmpty returns true if the set contains no elements.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns a slice of all values in the set, in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// Resize changes the capacity of the set. Growing preserves existing
// members; shrinking clears the set (a shrunk capacity can no longer
// validate the old sparse indices).
func (s *SparseSet) Resize(capacity uint32) {
	if int(capacity) <= len(s.sparse) {
		s.Clear()
		s.sparse = s.sparse[:capacity]
		return
	}
	grown := make([]uint32, capacity)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Capacity returns the current capacity of the set.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}
