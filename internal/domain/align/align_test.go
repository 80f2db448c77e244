package align_test

import (
	"math"
	"testing"

	"github.com/okian/mimic/internal/domain/align"
	"github.com/okian/mimic/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func s(t, x, y float64) model.Sample {
	return model.Sample{T: t, X: x, Y: y}
}

func TestAlignerAlign(t *testing.T) {
	Convey("Given a default aligner", t, func() {
		aligner := align.NewAligner()

		Convey("When a trace is aligned against an exact copy", func() {
			a := []model.Sample{s(0, 0, 0), s(10, 3, 4), s(20, 6, 8), s(30, 9, 12)}
			b := []model.Sample{s(0, 0, 0), s(10, 3, 4), s(20, 6, 8), s(30, 9, 12)}

			clean, interpolated, err := aligner.Align(a, b)

			Convey("Then both outputs match on every retained sample", func() {
				So(err, ShouldBeNil)
				So(clean, ShouldResemble, interpolated)
				So(len(clean), ShouldEqual, 3)
			})
		})

		Convey("When the sequences have different sample counts", func() {
			a := []model.Sample{s(0, 0, 0), s(10, 10, 0), s(20, 20, 0)}
			b := []model.Sample{s(0, 0, 0), s(20, 20, 0)}

			clean, interpolated, err := aligner.Align(a, b)

			Convey("Then the shorter sequence drives the output and the tail without a right bracket is dropped from both", func() {
				So(err, ShouldBeNil)
				So(clean, ShouldResemble, []model.Sample{s(0, 0, 0)})
				So(interpolated, ShouldResemble, []model.Sample{s(0, 0, 0)})
			})
		})

		Convey("When the source is denser than the reference", func() {
			a := []model.Sample{s(5, 1, 1), s(15, 2, 2), s(25, 3, 3)}
			b := []model.Sample{s(0, 0, 0), s(10, 10, 10), s(20, 20, 20), s(30, 30, 30)}

			clean, interpolated, err := aligner.Align(a, b)

			Convey("Then the source coordinates are interpolated onto the reference timestamps", func() {
				So(err, ShouldBeNil)
				So(clean, ShouldResemble, []model.Sample{s(5, 1, 1), s(15, 2, 2)})
				So(interpolated, ShouldResemble, []model.Sample{s(5, 5, 5), s(15, 15, 15)})
			})

			Convey("And both outputs have equal length bounded by the shorter input", func() {
				So(len(clean), ShouldEqual, len(interpolated))
				So(len(clean), ShouldBeLessThanOrEqualTo, 3)
			})
		})

		Convey("When the source contains duplicate timestamps", func() {
			a := []model.Sample{s(0, 0, 0), s(5, 5, 5), s(10, 10, 10)}
			b := []model.Sample{s(1, 2, 3), s(1, 9, 9), s(20, 0, 0)}

			clean, interpolated, err := aligner.Align(a, b)

			Convey("Then the degenerate bracket falls back to the earlier point", func() {
				So(err, ShouldBeNil)
				So(clean, ShouldResemble, []model.Sample{s(0, 0, 0)})
				So(interpolated, ShouldResemble, []model.Sample{s(0, 2, 3)})
			})
		})

		Convey("When interpolation would project far outside the playfield", func() {
			a := []model.Sample{s(5, 100, 100), s(8, 110, 110)}
			b := []model.Sample{s(6, 0, 0), s(7, 700, 700)}

			clean, interpolated, err := aligner.Align(a, b)

			Convey("Then the reference sample is substituted for the artifact", func() {
				So(err, ShouldBeNil)
				So(clean, ShouldResemble, []model.Sample{s(5, 100, 100)})
				So(interpolated, ShouldResemble, []model.Sample{s(5, 100, 100)})
			})

			Convey("And no interpolated coordinate exceeds the bound", func() {
				for _, p := range interpolated {
					So(math.Abs(p.X), ShouldBeLessThanOrEqualTo, align.DefaultOutlierBound)
					So(math.Abs(p.Y), ShouldBeLessThanOrEqualTo, align.DefaultOutlierBound)
				}
			})
		})

		Convey("When either input has fewer than two samples", func() {
			_, _, err := aligner.Align([]model.Sample{s(0, 0, 0)}, []model.Sample{s(0, 0, 0), s(1, 1, 1)})

			Convey("Then alignment fails with ErrTooFewSamples", func() {
				So(err, ShouldEqual, align.ErrTooFewSamples)
			})
		})
	})
}

func TestAlignerPreserveOrder(t *testing.T) {
	Convey("Given an aligner that preserves argument order", t, func() {
		aligner := align.NewAligner(align.WithPreserveOrder(true))

		a := []model.Sample{s(5, 1, 1), s(15, 2, 2), s(25, 3, 3)}
		b := []model.Sample{s(0, 0, 0), s(10, 10, 10), s(20, 20, 20), s(30, 30, 30)}

		Convey("When the same pair is aligned in both argument orders", func() {
			forA, forB, err1 := aligner.Align(a, b)
			swappedB, swappedA, err2 := aligner.Align(b, a)

			Convey("Then swapping the arguments swaps the results", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(forA, ShouldResemble, swappedA)
				So(forB, ShouldResemble, swappedB)
			})
		})
	})
}

func TestStepBeforeInterpolation(t *testing.T) {
	Convey("Given an aligner with step-before interpolation", t, func() {
		aligner := align.NewAligner(align.WithInterpolation(align.StepBefore))

		a := []model.Sample{s(5, 1, 1), s(15, 2, 2), s(25, 3, 3)}
		b := []model.Sample{s(0, 0, 0), s(10, 10, 10), s(20, 20, 20), s(30, 30, 30)}

		Convey("When the pair is aligned", func() {
			clean, interpolated, err := aligner.Align(a, b)

			Convey("Then the earlier bracket's coordinates are carried forward unsmoothed", func() {
				So(err, ShouldBeNil)
				So(clean, ShouldResemble, []model.Sample{s(5, 1, 1), s(15, 2, 2)})
				So(interpolated, ShouldResemble, []model.Sample{s(5, 10, 10), s(15, 20, 20)})
			})
		})
	})
}
