package textstream

import (
	"fmt"
	"io"
	"train-consist-service/internal/domain"
)

// Encoder writes the compact text form read by Decoder, one value per line.
type Encoder struct {
	w   io.Writer
	err error
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) EncodeWagon(w domain.Wagon) error {
	if e.err != nil {
		return e.err
	}
	if _, err := fmt.Fprintf(e.w, "%d\n%d\n%d\n", w.MaxCapacity(), w.OccupiedSeats(), w.Type().Code()); err != nil {
		e.err = fmt.Errorf("encode wagon: %w", err)
	}
	return e.err
}

func (e *Encoder) EncodeTrain(t *domain.Train) error {
	if e.err != nil {
		return e.err
	}
	if _, err := fmt.Fprintf(e.w, "%d\n", t.Len()); err != nil {
		e.err = fmt.Errorf("encode train: %w", err)
		return e.err
	}
	for _, w := range t.Wagons() {
		if err := e.EncodeWagon(w); err != nil {
			return err
		}
	}
	return nil
}
