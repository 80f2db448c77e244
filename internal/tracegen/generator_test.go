package tracegen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/okian/mimic/internal/adapters/loader"
	"github.com/okian/mimic/internal/domain/compare"
	"github.com/okian/mimic/internal/domain/model"
	"github.com/okian/mimic/internal/tracegen"
	"github.com/okian/mimic/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	Convey("Given a generation run with copies", t, func() {
		dir := t.TempDir()
		stats, err := tracegen.Generate(ctx, &tracegen.Config{
			Count:   2,
			Copies:  1,
			Samples: 50,
			Seed:    42,
			OutDir:  dir,
		})

		Convey("Then the requested files land on disk", func() {
			So(err, ShouldBeNil)
			So(stats.Traces, ShouldEqual, 2)
			So(stats.Copies, ShouldEqual, 1)
			So(stats.Files, ShouldHaveLength, 3)
		})

		Convey("Then the loader can read them back", func() {
			So(err, ShouldBeNil)
			traces, err := loader.LoadDir(ctx, dir)
			So(err, ShouldBeNil)
			So(traces, ShouldHaveLength, 3)
			for _, trace := range traces {
				So(trace.Len(), ShouldEqual, 50)
			}
		})

		Convey("Then a detection run flags the copied trace", func() {
			So(err, ShouldBeNil)
			traces, err := loader.LoadDir(ctx, dir)
			So(err, ShouldBeNil)

			engine := compare.NewEngine(5)
			flagged := make([]compare.Outcome, 0, 1)
			err = engine.Compare(ctx, compare.ModeSingle, traces, nil, func(o compare.Outcome) error {
				flagged = append(flagged, o)
				return nil
			})
			So(err, ShouldBeNil)
			So(flagged, ShouldHaveLength, 1)
			copyInvolved := strings.HasSuffix(flagged[0].OwnerA, "-copy") ||
				strings.HasSuffix(flagged[0].OwnerB, "-copy")
			So(copyInvolved, ShouldBeTrue)
		})
	})

	Convey("Given two runs with the same seed", t, func() {
		load := func(seed int64) []model.Sample {
			dir := t.TempDir()
			_, err := tracegen.Generate(ctx, &tracegen.Config{
				Count:   1,
				Samples: 20,
				Seed:    seed,
				OutDir:  dir,
			})
			So(err, ShouldBeNil)
			traces, err := loader.LoadDir(ctx, dir)
			So(err, ShouldBeNil)
			So(traces, ShouldHaveLength, 1)
			return traces[0].Samples()
		}

		Convey("Then the walks are identical", func() {
			So(load(7), ShouldResemble, load(7))
		})

		Convey("Then a different seed changes the walk", func() {
			So(load(7), ShouldNotResemble, load(8))
		})
	})

	Convey("Given a run asking for no traces", t, func() {
		_, err := tracegen.Generate(ctx, &tracegen.Config{OutDir: t.TempDir()})

		Convey("Then generation is refused", func() {
			So(err, ShouldEqual, tracegen.ErrNothingToGenerate)
		})
	})
}
