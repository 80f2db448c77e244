package trust_test

import (
	"testing"

	"github.com/okian/mimic/internal/domain/trust"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSet(t *testing.T) {
	Convey("Given a trust set with two owners", t, func() {
		set := trust.NewSet("alice", "bob")

		Convey("Then membership is reported per owner", func() {
			So(set.Contains("alice"), ShouldBeTrue)
			So(set.Contains("mallory"), ShouldBeFalse)
			So(set.Size(), ShouldEqual, 2)
		})

		Convey("Then Both requires both owners to be trusted", func() {
			So(set.Both("alice", "bob"), ShouldBeTrue)
			So(set.Both("alice", "mallory"), ShouldBeFalse)
		})
	})

	Convey("Given a nil trust set", t, func() {
		var set *trust.Set

		Convey("Then nobody is trusted", func() {
			So(set.Contains("alice"), ShouldBeFalse)
			So(set.Both("alice", "bob"), ShouldBeFalse)
			So(set.Size(), ShouldEqual, 0)
		})
	})
}
