package domain

import "math/bits"

// Wagon is a single train car with seat bookkeeping. It is a plain value:
// copying a Wagon copies its state, and it holds no reference to a Train.
// The zero value is an empty Restaurant wagon.
type Wagon struct {
	maxCapacity   int
	occupiedSeats int
	wagonType     WagonType
}

// NewWagon builds a wagon from explicit numbers. Restaurant wagons ignore
// both numbers and are always 0/0.
func NewWagon(maxCapacity, occupiedSeats int, t WagonType) (Wagon, error) {
	if !t.Valid() {
		return Wagon{}, InvalidArgument("new wagon", "unknown wagon type %d", int(t))
	}
	if t == Restaurant {
		return Wagon{wagonType: Restaurant}, nil
	}
	if maxCapacity < 0 || occupiedSeats < 0 {
		return Wagon{}, InvalidArgument("new wagon", "capacity=%d occupied=%d must not be negative", maxCapacity, occupiedSeats)
	}
	if occupiedSeats > maxCapacity {
		return Wagon{}, InvalidArgument("new wagon", "occupied seats %d exceed max capacity %d", occupiedSeats, maxCapacity)
	}

	return Wagon{
		maxCapacity:   maxCapacity,
		occupiedSeats: occupiedSeats,
		wagonType:     t,
	}, nil
}

// NewWagonOfType builds an empty wagon with the canonical capacity of t.
func NewWagonOfType(t WagonType) Wagon {
	return Wagon{maxCapacity: t.CanonicalCapacity(), wagonType: t}
}

func (w Wagon) MaxCapacity() int   { return w.maxCapacity }
func (w Wagon) OccupiedSeats() int { return w.occupiedSeats }
func (w Wagon) Type() WagonType    { return w.wagonType }
func (w Wagon) FreeSeats() int     { return w.maxCapacity - w.occupiedSeats }

// OccupancyPercentage returns occupied/capacity*100, or 0 for a wagon
// without seats.
func (w Wagon) OccupancyPercentage() float64 {
	if w.maxCapacity == 0 {
		return 0.0
	}
	return float64(w.occupiedSeats) / float64(w.maxCapacity) * 100.0
}

func (w Wagon) Equal(other Wagon) bool {
	return w == other
}

// Board adds passengers to the wagon.
func (w *Wagon) Board(passengers int) error {
	if passengers < 0 {
		return InvalidArgument("board passengers", "cannot board negative number of passengers (%d)", passengers)
	}
	if w.wagonType == Restaurant {
		return InvalidArgument("board passengers", "cannot board to restaurant wagon")
	}
	if w.occupiedSeats+passengers > w.maxCapacity {
		return InvalidArgument("board passengers", "wagon is full: occupied=%d capacity=%d boarding=%d",
			w.occupiedSeats, w.maxCapacity, passengers)
	}

	w.occupiedSeats += passengers
	return nil
}

// Disembark removes passengers from the wagon.
func (w *Wagon) Disembark(passengers int) error {
	if passengers < 0 {
		return InvalidArgument("disembark passengers", "cannot disembark negative number of passengers (%d)", passengers)
	}
	if w.wagonType == Restaurant {
		return InvalidArgument("disembark passengers", "cannot disembark from restaurant wagon")
	}
	if w.occupiedSeats-passengers < 0 {
		return InvalidArgument("disembark passengers", "not enough passengers: occupied=%d disembarking=%d",
			w.occupiedSeats, passengers)
	}

	w.occupiedSeats -= passengers
	return nil
}

func (w *Wagon) SetMaxCapacity(capacity int) error {
	if w.wagonType == Restaurant {
		return InvalidArgument("set max capacity", "restaurant wagon has no seats")
	}
	if capacity < 0 || capacity < w.occupiedSeats {
		return InvalidArgument("set max capacity", "capacity %d must be >= 0 and >= occupied seats %d",
			capacity, w.occupiedSeats)
	}

	w.maxCapacity = capacity
	return nil
}

func (w *Wagon) SetOccupiedSeats(seats int) error {
	if w.wagonType == Restaurant {
		return InvalidArgument("set occupied seats", "restaurant wagon has no seats")
	}
	if seats < 0 || seats > w.maxCapacity {
		return InvalidArgument("set occupied seats", "seats %d not in [0, %d]", seats, w.maxCapacity)
	}

	w.occupiedSeats = seats
	return nil
}

// SetType converts the wagon to another class. Capacity becomes the
// canonical capacity of the new class and the passengers stay on board,
// so the change is rejected when they would not fit.
func (w *Wagon) SetType(t WagonType) error {
	if !t.Valid() {
		return InvalidArgument("set wagon type", "unknown wagon type %d", int(t))
	}
	if t == Restaurant {
		*w = Wagon{wagonType: Restaurant}
		return nil
	}

	capacity := t.CanonicalCapacity()
	if w.occupiedSeats > capacity {
		return InvalidArgument("set wagon type", "%d occupied seats do not fit into %s capacity %d",
			w.occupiedSeats, t, capacity)
	}

	w.maxCapacity = capacity
	w.wagonType = t
	return nil
}

// TransferPassengers balances two wagons of the same class to a shared
// occupancy ratio. Each side gets floor(ratio * own capacity) seats, so up
// to one passenger per wagon may be lost to truncation.
func (w *Wagon) TransferPassengers(other *Wagon) error {
	if other == nil {
		return InvalidArgument("transfer passengers", "target wagon is nil")
	}
	if w.wagonType == Restaurant || other.wagonType == Restaurant {
		return InvalidArgument("transfer passengers", "passengers cannot be transferred to or from a restaurant wagon")
	}
	if w.wagonType != other.wagonType {
		return InvalidArgument("transfer passengers", "wagon types differ: %s and %s", w.wagonType, other.wagonType)
	}

	totalOccupied := w.occupiedSeats + other.occupiedSeats
	totalCapacity := w.maxCapacity + other.maxCapacity
	if totalCapacity == 0 {
		return nil
	}

	w.occupiedSeats = shareOf(w.maxCapacity, totalOccupied, totalCapacity)
	other.occupiedSeats = shareOf(other.maxCapacity, totalOccupied, totalCapacity)
	return nil
}

// shareOf is floor(capacity * occupied / total) without float rounding. The
// product is taken at 128 bits; occupied <= total keeps the quotient within
// capacity.
func shareOf(capacity, occupied, total int) int {
	hi, lo := bits.Mul64(uint64(capacity), uint64(occupied))
	q, _ := bits.Div64(hi, lo, uint64(total))
	return int(q)
}
