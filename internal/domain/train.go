package domain

// Train is an ordered sequence of wagons that it owns exclusively. Position
// matters: it drives restaurant placement and display order.
//
// Storage is managed by hand so the slot count is observable through
// Capacity: Append doubles the slots when full (first growth to 1),
// InsertAt grows by exactly one slot, and removal never shrinks.
// The zero value is an empty train.
type Train struct {
	wagons []Wagon
}

// NewTrain builds a train holding copies of the given wagons, with capacity
// equal to their number.
func NewTrain(wagons ...Wagon) *Train {
	t := &Train{}
	if len(wagons) > 0 {
		t.wagons = make([]Wagon, len(wagons))
		copy(t.wagons, wagons)
	}
	return t
}

// Len is the number of wagons in the train.
func (t *Train) Len() int { return len(t.wagons) }

// Capacity is the number of allocated wagon slots.
func (t *Train) Capacity() int { return cap(t.wagons) }

// Wagons returns a copy of the wagon sequence.
func (t *Train) Wagons() []Wagon {
	out := make([]Wagon, len(t.wagons))
	copy(out, t.wagons)
	return out
}

// Wagon returns the wagon at index i by value.
func (t *Train) Wagon(i int) (Wagon, error) {
	if i < 0 || i >= len(t.wagons) {
		return Wagon{}, outOfRange("get wagon", i, len(t.wagons))
	}
	return t.wagons[i], nil
}

// At returns a pointer to the wagon at index i for in-place mutation. The
// pointer is invalidated by any operation that reallocates or shifts storage.
func (t *Train) At(i int) (*Wagon, error) {
	if i < 0 || i >= len(t.wagons) {
		return nil, outOfRange("access wagon", i, len(t.wagons))
	}
	return &t.wagons[i], nil
}

// Clone returns a deep copy with the same capacity.
func (t *Train) Clone() *Train {
	c := &Train{}
	if t.wagons != nil {
		c.wagons = make([]Wagon, len(t.wagons), cap(t.wagons))
		copy(c.wagons, t.wagons)
	}
	return c
}

// Take moves the storage into a new Train and leaves t empty with zero
// capacity.
func (t *Train) Take() *Train {
	moved := &Train{wagons: t.wagons}
	t.wagons = nil
	return moved
}

// Equal reports whether both trains hold equal wagons in the same order.
func (t *Train) Equal(other *Train) bool {
	if other == nil {
		return false
	}
	if len(t.wagons) != len(other.wagons) {
		return false
	}
	for i := range t.wagons {
		if t.wagons[i] != other.wagons[i] {
			return false
		}
	}
	return true
}

// Append adds a copy of w at the end of the train.
func (t *Train) Append(w Wagon) {
	if len(t.wagons) == cap(t.wagons) {
		newCapacity := 1
		if cap(t.wagons) > 0 {
			newCapacity = cap(t.wagons) * 2
		}
		t.realloc(newCapacity)
	}
	t.wagons = append(t.wagons, w)
}

// InsertAt places w at index i, shifting the tail right. i == Len() appends.
func (t *Train) InsertAt(w Wagon, i int) error {
	if i < 0 || i > len(t.wagons) {
		return InvalidArgument("insert wagon", "index %d not in [0, %d]", i, len(t.wagons))
	}

	grown := make([]Wagon, len(t.wagons)+1, cap(t.wagons)+1)
	copy(grown, t.wagons[:i])
	grown[i] = w
	copy(grown[i+1:], t.wagons[i:])
	t.wagons = grown
	return nil
}

// AddWagonAtIndex is InsertAt with the argument order of the public API.
func (t *Train) AddWagonAtIndex(w Wagon, i int) error {
	return t.InsertAt(w, i)
}

// RemoveAt drops the wagon at index i. Capacity is unchanged.
func (t *Train) RemoveAt(i int) error {
	if i < 0 || i >= len(t.wagons) {
		return outOfRange("remove wagon", i, len(t.wagons))
	}

	copy(t.wagons[i:], t.wagons[i+1:])
	t.wagons[len(t.wagons)-1] = Wagon{}
	t.wagons = t.wagons[:len(t.wagons)-1]
	return nil
}

// SetCount grows the train to exactly n wagons and n slots. New slots hold
// empty restaurant wagons. Shrinking is refused so wagons are never dropped
// by accident.
func (t *Train) SetCount(n int) error {
	if n < 0 {
		return InvalidArgument("set wagon count", "count %d must not be negative", n)
	}
	if n < len(t.wagons) {
		return InvalidArgument("set wagon count", "count %d is less than current count %d", n, len(t.wagons))
	}
	if n == len(t.wagons) {
		return nil
	}

	grown := make([]Wagon, n)
	copy(grown, t.wagons)
	t.wagons = grown
	return nil
}

// SetCapacity reallocates storage to exactly n slots.
func (t *Train) SetCapacity(n int) error {
	if n < 0 {
		return InvalidArgument("set capacity", "capacity %d must not be negative", n)
	}
	if n < len(t.wagons) {
		return InvalidArgument("set capacity", "capacity %d is less than wagon count %d", n, len(t.wagons))
	}
	if n != cap(t.wagons) {
		t.realloc(n)
	}
	return nil
}

// ReplaceAll swaps the whole sequence for copies of the first n wagons.
func (t *Train) ReplaceAll(wagons []Wagon, n int) error {
	if n < 0 {
		return InvalidArgument("replace wagons", "count %d must not be negative", n)
	}
	if wagons == nil {
		return InvalidArgument("replace wagons", "wagons must not be nil")
	}
	if n > len(wagons) {
		return InvalidArgument("replace wagons", "count %d exceeds %d provided wagons", n, len(wagons))
	}

	replaced := make([]Wagon, n)
	copy(replaced, wagons[:n])
	t.wagons = replaced
	return nil
}

func (t *Train) realloc(capacity int) {
	grown := make([]Wagon, len(t.wagons), capacity)
	copy(grown, t.wagons)
	t.wagons = grown
}
