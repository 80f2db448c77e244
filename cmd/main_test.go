package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/mimic/internal/adapters/loader"
	"github.com/okian/mimic/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func writeTrace(t *testing.T, dir, name string) {
	t.Helper()
	payload := `{"events":[{"dt":0,"x":0,"y":0},{"dt":10,"x":1,"y":1}]}`
	if err := os.WriteFile(filepath.Join(dir, name), []byte(payload), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCollections(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given configured trace directories", t, func() {
		dirA := t.TempDir()
		dirB := t.TempDir()
		writeTrace(t, dirA, "a.json")
		writeTrace(t, dirA, "b.json")
		writeTrace(t, dirB, "c.json")

		convey.Convey("When single mode loads", func() {
			cfg := config.New()
			cfg.TracesDir = dirA

			set1, set2, err := loadCollections(ctx, cfg)

			convey.Convey("Then only the first collection is read", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(set1, convey.ShouldHaveLength, 2)
				convey.So(set2, convey.ShouldBeNil)
			})
		})

		convey.Convey("When double mode loads", func() {
			cfg := config.New()
			cfg.Mode = "double"
			cfg.TracesDir = dirA
			cfg.TracesDirB = dirB

			set1, set2, err := loadCollections(ctx, cfg)

			convey.Convey("Then both collections are read", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(set1, convey.ShouldHaveLength, 2)
				convey.So(set2, convey.ShouldHaveLength, 1)
			})
		})

		convey.Convey("When the first directory is empty", func() {
			cfg := config.New()
			cfg.TracesDir = t.TempDir()

			_, _, err := loadCollections(ctx, cfg)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldWrap, loader.ErrNoTraces)
			})
		})
	})
}
