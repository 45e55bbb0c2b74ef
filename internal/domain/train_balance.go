package domain

// PassengerCountByType sums occupied seats and capacity over the wagons of
// type t. Both are 0 when no wagon matches.
func (t *Train) PassengerCountByType(wt WagonType) (occupied, capacity int) {
	for _, w := range t.wagons {
		if w.wagonType == wt {
			occupied += w.occupiedSeats
			capacity += w.maxCapacity
		}
	}
	return occupied, capacity
}

// TotalPassengers is the number of occupied seats across the whole train.
func (t *Train) TotalPassengers() int {
	total := 0
	for _, w := range t.wagons {
		total += w.occupiedSeats
	}
	return total
}

// TotalCapacity is the number of seats across the whole train.
func (t *Train) TotalCapacity() int {
	total := 0
	for _, w := range t.wagons {
		total += w.maxCapacity
	}
	return total
}

// BoardToMostAvailable boards all passengers into one wagon of type wt.
// Among the wagons with enough free seats it picks the fullest one; ties go
// to the lowest index. It returns the index of the chosen wagon.
func (t *Train) BoardToMostAvailable(passengers int, wt WagonType) (int, error) {
	if passengers < 0 {
		return -1, InvalidArgument("board to most available wagon", "cannot board negative number of passengers (%d)", passengers)
	}

	chosen := -1
	for i, w := range t.wagons {
		if w.wagonType != wt || w.FreeSeats() < passengers {
			continue
		}
		if chosen == -1 || w.occupiedSeats > t.wagons[chosen].occupiedSeats {
			chosen = i
		}
	}
	if chosen == -1 {
		return -1, InvalidArgument("board to most available wagon",
			"no %s wagon can accommodate %d passengers", wt, passengers)
	}

	if err := t.wagons[chosen].Board(passengers); err != nil {
		return -1, err
	}
	return chosen, nil
}

// Redistribute evens out occupancy inside each passenger class. Every wagon
// of a class gets floor(capacity * classOccupied / classCapacity) seats.
// Classes with no seats at all are left untouched, and restaurant wagons are
// never changed. Truncation means the class total may shrink slightly.
func (t *Train) Redistribute() {
	for _, wt := range PassengerTypes {
		occupied, capacity := t.PassengerCountByType(wt)
		if capacity == 0 {
			continue
		}

		for i := range t.wagons {
			if t.wagons[i].wagonType == wt {
				t.wagons[i].occupiedSeats = shareOf(t.wagons[i].maxCapacity, occupied, capacity)
			}
		}
	}
}

// Optimize packs each class's passengers into its wagons in index order,
// filling each wagon before moving on, then removes every wagon left with no
// passengers. Restaurant wagons never hold passengers and are removed too;
// call PlaceRestaurant afterwards to get one back.
func (t *Train) Optimize() {
	for _, wt := range PassengerTypes {
		pool, _ := t.PassengerCountByType(wt)

		for i := range t.wagons {
			w := &t.wagons[i]
			if w.wagonType != wt {
				continue
			}
			if pool > w.maxCapacity {
				w.occupiedSeats = w.maxCapacity
				pool -= w.maxCapacity
			} else {
				w.occupiedSeats = pool
				pool = 0
			}
		}
	}

	for i := 0; i < len(t.wagons); {
		if t.wagons[i].occupiedSeats != 0 {
			i++
			continue
		}
		// index is always in range here
		_ = t.RemoveAt(i)
	}
}

// PlaceRestaurant inserts an empty restaurant wagon where it splits the
// passengers roughly in half. Walking the passenger wagons from the front,
// their occupancy is subtracted from the train total; the restaurant goes
// right after the first wagon that brings the remainder down to total/2 or
// below. Without passenger wagons it is appended. The insertion index is
// returned.
func (t *Train) PlaceRestaurant() int {
	total := 0
	for _, w := range t.wagons {
		if w.wagonType != Restaurant {
			total += w.occupiedSeats
		}
	}
	mid := total / 2

	position := len(t.wagons)
	remaining := total
	for i, w := range t.wagons {
		if w.wagonType == Restaurant {
			continue
		}
		remaining -= w.occupiedSeats
		if remaining <= mid {
			position = i + 1
			break
		}
	}

	// position is within [0, Len()]
	_ = t.InsertAt(Wagon{wagonType: Restaurant}, position)
	return position
}
