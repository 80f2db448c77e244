package queue_test

import (
	"context"
	"testing"

	"github.com/okian/mimic/internal/adapters/mq/queue"
	"github.com/okian/mimic/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func pair(t *testing.T, ownerA, ownerB string) queue.Pair {
	t.Helper()
	events := []model.Event{{DT: 0, X: 0, Y: 0}, {DT: 10, X: 1, Y: 1}}
	a, err := model.NewTrace(ownerA, events)
	if err != nil {
		t.Fatal(err)
	}
	b, err := model.NewTrace(ownerB, events)
	if err != nil {
		t.Fatal(err)
	}
	return queue.Pair{A: a, B: b}
}

func TestInMemoryQueue(t *testing.T) {
	ctx := context.Background()

	Convey("Given a queue with capacity 2", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))

		Convey("When pairs are enqueued up to capacity", func() {
			So(q.Enqueue(ctx, pair(t, "a", "b")), ShouldBeTrue)
			So(q.Enqueue(ctx, pair(t, "c", "d")), ShouldBeTrue)

			Convey("Then the queue reports its length", func() {
				So(q.Len(ctx), ShouldEqual, 2)
			})

			Convey("Then a further enqueue is rejected", func() {
				So(q.Enqueue(ctx, pair(t, "e", "f")), ShouldBeFalse)
			})
		})

		Convey("When the queue is closed with pairs still buffered", func() {
			So(q.Enqueue(ctx, pair(t, "a", "b")), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue is rejected but buffered pairs still drain", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, pair(t, "c", "d")), ShouldBeFalse)

				p, ok := <-q.Dequeue(ctx)
				So(ok, ShouldBeTrue)
				So(p.A.Owner(), ShouldEqual, "a")

				_, ok = <-q.Dequeue(ctx)
				So(ok, ShouldBeFalse)
			})

			Convey("Then closing again is harmless", func() {
				So(q.Close(), ShouldBeNil)
			})
		})
	})
}
