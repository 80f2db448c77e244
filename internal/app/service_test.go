package app_test

import (
	"context"
	"testing"

	"github.com/okian/mimic/internal/app"
	"github.com/okian/mimic/internal/domain/compare"
	"github.com/okian/mimic/internal/domain/model"
	"github.com/okian/mimic/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func mkTrace(t *testing.T, owner string, offset float64) *model.Trace {
	t.Helper()
	events := []model.Event{
		{DT: 0, X: offset, Y: offset},
		{DT: 10, X: offset + 3, Y: offset + 4},
		{DT: 10, X: offset + 6, Y: offset + 8},
		{DT: 10, X: offset + 9, Y: offset + 12},
	}
	trace, err := model.NewTrace(owner, events)
	if err != nil {
		t.Fatal(err)
	}
	return trace
}

func TestServiceRun(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	Convey("Given a collection with one copied trace", t, func() {
		traces := []*model.Trace{
			mkTrace(t, "alice", 0),
			mkTrace(t, "mallory", 0),
			mkTrace(t, "bob", 500),
		}

		Convey("When a single-mode batch runs across workers", func() {
			svc := app.New(
				app.WithThreshold(5),
				app.WithWorkerCount(4),
			)
			entries, err := svc.Run(ctx, traces, nil)

			Convey("Then only the copied pair is flagged", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].OwnerA, ShouldEqual, "alice")
				So(entries[0].OwnerB, ShouldEqual, "mallory")
				So(entries[0].MeanDistance, ShouldAlmostEqual, 0)
			})
		})

		Convey("When both owners of the copied pair are trusted", func() {
			svc := app.New(
				app.WithThreshold(5),
				app.WithWorkerCount(2),
				app.WithTrust("alice", "mallory"),
			)
			entries, err := svc.Run(ctx, traces, nil)

			Convey("Then nothing is flagged", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})

		Convey("When a double-mode batch compares two collections", func() {
			svc := app.New(
				app.WithThreshold(5),
				app.WithMode(compare.ModeDouble),
				app.WithWorkerCount(2),
			)
			setB := []*model.Trace{mkTrace(t, "carol", 0)}
			entries, err := svc.Run(ctx, traces, setB)

			Convey("Then every match against the second collection is flagged", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].OwnerB, ShouldEqual, "carol")
				So(entries[1].OwnerB, ShouldEqual, "carol")
			})
		})

		Convey("When the mode is unrecognized", func() {
			svc := app.New(app.WithMode(compare.Mode("triple")))
			_, err := svc.Run(ctx, traces, nil)

			Convey("Then the batch fails before any comparison", func() {
				So(err, ShouldWrap, compare.ErrInvalidMode)
			})
		})

		Convey("When the collection yields no pairs", func() {
			svc := app.New()
			entries, err := svc.Run(ctx, traces[:1], nil)

			Convey("Then the batch finishes empty", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})
	})
}
