package repository_test

import (
	"context"
	"testing"

	"github.com/okian/mimic/internal/adapters/repository"
	"github.com/okian/mimic/internal/domain/compare"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given flagged outcomes recorded out of order", t, func() {
		store := repository.NewMemStore(repository.WithInitialCapacity(8))

		So(store.Record(ctx, compare.Outcome{OwnerA: "c", OwnerB: "d", MeanDistance: 12, StdDistance: 2}), ShouldBeNil)
		So(store.Record(ctx, compare.Outcome{OwnerA: "a", OwnerB: "b", MeanDistance: 3, StdDistance: 1}), ShouldBeNil)
		So(store.Record(ctx, compare.Outcome{OwnerA: "e", OwnerB: "f", MeanDistance: 7, StdDistance: 4}), ShouldBeNil)

		Convey("When the top entries are listed", func() {
			entries, err := store.TopN(ctx, 2)

			Convey("Then the most similar pairs come first with ranks assigned", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].OwnerA, ShouldEqual, "a")
				So(entries[0].MeanDistance, ShouldEqual, 3)
				So(entries[1].Rank, ShouldEqual, 2)
				So(entries[1].OwnerA, ShouldEqual, "e")
			})
		})

		Convey("When more entries are requested than exist", func() {
			entries, err := store.TopN(ctx, 100)

			Convey("Then everything is returned", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
				So(store.Count(ctx), ShouldEqual, 3)
			})
		})

		Convey("When a negative limit is requested", func() {
			_, err := store.TopN(ctx, -1)

			Convey("Then the store rejects it", func() {
				So(err, ShouldEqual, repository.ErrInvalidLimit)
			})
		})
	})
}
