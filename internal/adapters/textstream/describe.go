package textstream

import (
	"fmt"
	"io"
	"train-consist-service/internal/domain"
)

// DescribeTrain writes a human-readable listing of the train. It is meant for
// display and is not read back by Decoder.
func DescribeTrain(w io.Writer, t *domain.Train) error {
	if _, err := fmt.Fprintf(w, "Train with %d wagon(s)\n", t.Len()); err != nil {
		return fmt.Errorf("describe train: %w", err)
	}
	for i, wg := range t.Wagons() {
		_, err := fmt.Fprintf(w, "#%d capacity=%d occupied=%d type=%s\n",
			i, wg.MaxCapacity(), wg.OccupiedSeats(), wg.Type())
		if err != nil {
			return fmt.Errorf("describe train: wagon %d: %w", i, err)
		}
	}
	return nil
}
