package textstream

import (
	"bytes"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"train-consist-service/internal/domain"
)

func wagon(capacity, occupied int, wt domain.WagonType) domain.Wagon {
	w, err := domain.NewWagon(capacity, occupied, wt)
	Expect(err).NotTo(HaveOccurred())
	return w
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

var _ = Describe("Encoder", func() {
	It("writes capacity, occupied seats and type code on separate lines", func() {
		var buf bytes.Buffer
		Expect(NewEncoder(&buf).EncodeWagon(wagon(50, 20, domain.Economy))).To(Succeed())
		Expect(buf.String()).To(Equal("50\n20\n1\n"))
	})

	It("prefixes a train with its wagon count", func() {
		var buf bytes.Buffer
		tr := domain.NewTrain(wagon(100, 50, domain.Sitting), domain.Wagon{})
		Expect(NewEncoder(&buf).EncodeTrain(tr)).To(Succeed())
		Expect(buf.String()).To(Equal("2\n100\n50\n0\n0\n0\n3\n"))
	})

	It("keeps the first write error", func() {
		enc := NewEncoder(failingWriter{})
		err := enc.EncodeTrain(domain.NewTrain())
		Expect(err).To(MatchError(ContainSubstring("disk full")))
		Expect(enc.EncodeWagon(domain.Wagon{})).To(MatchError(err))
	})
})

var _ = Describe("Decoder", func() {
	Context("with a valid train", func() {
		It("round-trips wagons in order", func() {
			orig := domain.NewTrain()
			orig.Append(wagon(100, 50, domain.Sitting))
			orig.Append(wagon(200, 100, domain.Economy))
			orig.Append(wagon(150, 75, domain.Luxury))

			var buf bytes.Buffer
			Expect(NewEncoder(&buf).EncodeTrain(orig)).To(Succeed())

			decoded, err := NewDecoder(&buf).DecodeTrain()
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Equal(orig)).To(BeTrue())
			Expect(decoded.Len()).To(Equal(3))
		})

		It("accepts records on a single line", func() {
			decoded, err := NewDecoder(strings.NewReader("2 30 5 2   0 0 3")).DecodeTrain()
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Wagons()).To(Equal([]domain.Wagon{wagon(30, 5, domain.Luxury), {}}))
		})

		It("decodes an empty train", func() {
			decoded, err := NewDecoder(strings.NewReader("0\n")).DecodeTrain()
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Len()).To(BeZero())
		})

		It("decodes consecutive trains from one stream", func() {
			dec := NewDecoder(strings.NewReader("1\n10\n1\n0\n1\n20\n2\n1\n"))
			first, err := dec.DecodeTrain()
			Expect(err).NotTo(HaveOccurred())
			second, err := dec.DecodeTrain()
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Wagons()).To(Equal([]domain.Wagon{wagon(10, 1, domain.Sitting)}))
			Expect(second.Wagons()).To(Equal([]domain.Wagon{wagon(20, 2, domain.Economy)}))
		})
	})

	Context("with restaurant wagons", func() {
		It("forces capacity and seats to zero", func() {
			w, err := NewDecoder(strings.NewReader("40\n10\n3\n")).DecodeWagon()
			Expect(err).NotTo(HaveOccurred())
			Expect(w).To(Equal(domain.Wagon{}))
		})
	})

	DescribeTable("rejecting invalid wagons",
		func(input string, target error) {
			dec := NewDecoder(strings.NewReader(input))
			_, err := dec.DecodeWagon()
			Expect(err).To(MatchError(target))
			Expect(dec.Err()).To(MatchError(err))
		},
		Entry("type code too large", "100\n50\n4\n", ErrInvalidRecord),
		Entry("negative type code", "100\n50\n-1\n", ErrInvalidRecord),
		Entry("negative capacity", "-5\n0\n0\n", ErrInvalidRecord),
		Entry("negative occupied", "5\n-1\n0\n", ErrInvalidRecord),
		Entry("occupied above capacity", "100\n110\n0\n", ErrInvalidRecord),
		Entry("zero capacity passenger wagon with seats", "0\n5\n1\n", ErrInvalidRecord),
		Entry("not a number", "ten\n5\n1\n", ErrMalformed),
		Entry("truncated record", "100\n50\n", io.ErrUnexpectedEOF),
		Entry("empty input", "", io.EOF),
	)

	It("fails a train with a negative count", func() {
		_, err := NewDecoder(strings.NewReader("-1\n")).DecodeTrain()
		Expect(err).To(MatchError(ErrInvalidRecord))
	})

	It("fails a train with fewer wagons than declared", func() {
		_, err := NewDecoder(strings.NewReader("2\n100\n50\n0\n")).DecodeTrain()
		Expect(err).To(MatchError(io.ErrUnexpectedEOF))
	})

	It("fails a huge declared count at the end of input instead of allocating it", func() {
		tr, err := NewDecoder(strings.NewReader("100000000000000000\n10 5 0\n")).DecodeTrain()
		Expect(err).To(MatchError(io.ErrUnexpectedEOF))
		Expect(tr).To(BeNil())
	})

	It("fails the whole train when one wagon is invalid", func() {
		tr, err := NewDecoder(strings.NewReader("2\n100\n50\n0\n10\n20\n1\n")).DecodeTrain()
		Expect(err).To(MatchError(ErrInvalidRecord))
		Expect(tr).To(BeNil())
	})

	It("stays failed without consuming further input", func() {
		dec := NewDecoder(strings.NewReader("x\n1\n2\n0\n"))
		_, err := dec.DecodeWagon()
		Expect(err).To(MatchError(ErrMalformed))

		_, again := dec.DecodeWagon()
		Expect(again).To(Equal(err))
		_, trainErr := dec.DecodeTrain()
		Expect(trainErr).To(Equal(err))
	})
})

var _ = Describe("DescribeTrain", func() {
	It("lists every wagon with its human-readable type", func() {
		var buf bytes.Buffer
		tr := domain.NewTrain(wagon(100, 50, domain.Sitting), domain.Wagon{}, wagon(30, 3, domain.Luxury))
		Expect(DescribeTrain(&buf, tr)).To(Succeed())
		Expect(buf.String()).To(Equal(
			"Train with 3 wagon(s)\n" +
				"#0 capacity=100 occupied=50 type=Sitting\n" +
				"#1 capacity=0 occupied=0 type=Restaurant\n" +
				"#2 capacity=30 occupied=3 type=Luxury\n"))
	})
})
