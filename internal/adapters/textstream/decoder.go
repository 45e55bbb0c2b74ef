package textstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"train-consist-service/internal/domain"
)

// maxPrealloc bounds the slice reserved for a declared wagon count.
const maxPrealloc = 1024

var (
	// ErrMalformed reports a token that is not an integer.
	ErrMalformed = errors.New("malformed number")
	// ErrInvalidRecord reports well-formed numbers that do not describe a
	// valid wagon or train.
	ErrInvalidRecord = errors.New("invalid record")
)

// Decoder reads the compact text form: a wagon is "capacity occupied code",
// a train is "count" followed by count wagons. Tokens are separated by any
// whitespace, so one value per line and one record per line both parse.
//
// The first failure is sticky: once a read fails, every later read returns
// the same error without consuming more input.
type Decoder struct {
	sc  *bufio.Scanner
	err error
}

func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Decoder{sc: sc}
}

// Err returns the sticky failure, or nil while the decoder is healthy.
func (d *Decoder) Err() error { return d.err }

// DecodeWagon reads one wagon. At a clean end of input it returns io.EOF.
func (d *Decoder) DecodeWagon() (domain.Wagon, error) {
	if d.err != nil {
		return domain.Wagon{}, d.err
	}

	capacity, err := d.nextInt("capacity", true)
	if err != nil {
		return domain.Wagon{}, d.fail(err)
	}
	occupied, err := d.nextInt("occupied seats", false)
	if err != nil {
		return domain.Wagon{}, d.fail(err)
	}
	code, err := d.nextInt("type code", false)
	if err != nil {
		return domain.Wagon{}, d.fail(err)
	}

	w, err := buildWagon(capacity, occupied, code)
	if err != nil {
		return domain.Wagon{}, d.fail(err)
	}
	return w, nil
}

// DecodeTrain reads a whole train. Nothing is returned unless every wagon
// decodes; on failure the caller keeps whatever train it had.
func (d *Decoder) DecodeTrain() (*domain.Train, error) {
	if d.err != nil {
		return nil, d.err
	}

	count, err := d.nextInt("wagon count", true)
	if err != nil {
		return nil, d.fail(err)
	}
	if count < 0 {
		return nil, d.fail(fmt.Errorf("decode train: wagon count %d is negative: %w", count, ErrInvalidRecord))
	}

	// count is untrusted until that many wagons have been read.
	wagons := make([]domain.Wagon, 0, min(count, maxPrealloc))
	for i := 0; i < count; i++ {
		w, err := d.DecodeWagon()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = d.fail(fmt.Errorf("decode train: wagon %d of %d: %w", i+1, count, io.ErrUnexpectedEOF))
			}
			return nil, err
		}
		wagons = append(wagons, w)
	}

	return domain.NewTrain(wagons...), nil
}

// nextInt reads one integer token. A missing token is io.EOF when it would
// start a new record and io.ErrUnexpectedEOF in the middle of one.
func (d *Decoder) nextInt(field string, recordStart bool) (int, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return 0, fmt.Errorf("read %s: %w", field, err)
		}
		if recordStart {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("read %s: %w", field, io.ErrUnexpectedEOF)
	}

	tok := d.sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("read %s: %q: %w", field, tok, ErrMalformed)
	}
	return n, nil
}

func (d *Decoder) fail(err error) error {
	d.err = err
	return err
}

func buildWagon(capacity, occupied, code int) (domain.Wagon, error) {
	wt, err := domain.WagonTypeFromCode(code)
	if err != nil {
		return domain.Wagon{}, fmt.Errorf("decode wagon: %w: %w", ErrInvalidRecord, err)
	}
	if capacity < 0 || occupied < 0 {
		return domain.Wagon{}, fmt.Errorf("decode wagon: capacity=%d occupied=%d: %w", capacity, occupied, ErrInvalidRecord)
	}
	if capacity < occupied && capacity != 0 {
		return domain.Wagon{}, fmt.Errorf("decode wagon: occupied %d exceeds capacity %d: %w", occupied, capacity, ErrInvalidRecord)
	}

	w, err := domain.NewWagon(capacity, occupied, wt)
	if err != nil {
		return domain.Wagon{}, fmt.Errorf("decode wagon: %w: %w", ErrInvalidRecord, err)
	}
	return w, nil
}
