package systems

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/decker502/tilegrid/pkg/ecs"
	"github.com/decker502/tilegrid/pkg/grid"
)

func TestHoverSystem(t *testing.T) {
	Convey("Given a generated 5x9 lawn", t, func() {
		w := newLawnWorld()
		hover := NewHoverSystem(w.em, w.manager, nil)

		Convey("moving onto a tile highlights its row and column", func() {
			hover.Update(hoverAt(w.tile(2, 4).Position()))

			So(w.lawn().Coordinator.Highlighted(), ShouldHaveLength, 13)
			So(w.tile(2, 0).IsHighlighted(), ShouldBeTrue)
			So(w.tile(4, 4).IsHighlighted(), ShouldBeTrue)
			So(w.tile(0, 0).IsHighlighted(), ShouldBeFalse)

			hovered, ok := hover.Hovered()
			So(ok, ShouldBeTrue)
			So(hovered, ShouldEqual, w.tile(2, 4))

			Convey("moving to another tile moves the cross", func() {
				hover.Update(hoverAt(w.tile(0, 0).Position()))

				So(w.lawn().Coordinator.Highlighted(), ShouldHaveLength, 13)
				So(w.tile(2, 0).IsHighlighted(), ShouldBeFalse)
				So(w.tile(0, 8).IsHighlighted(), ShouldBeTrue)
				So(w.tile(4, 0).IsHighlighted(), ShouldBeTrue)
			})

			Convey("moving inside the same tile changes nothing", func() {
				hover.Update(hoverAt(offset(w.tile(2, 4).Position(), 0.2, -0.2)))
				So(w.lawn().Coordinator.Highlighted(), ShouldHaveLength, 13)
			})

			Convey("leaving the grid clears every highlight", func() {
				hover.Update(hoverAt(grid.Vec3{X: 50, Y: 50}))

				So(w.lawn().Coordinator.Highlighted(), ShouldBeEmpty)
				_, ok := hover.Hovered()
				So(ok, ShouldBeFalse)
			})

			Convey("regenerating the grid does not touch destroyed tiles", func() {
				w.regenerate()
				So(func() { hover.Update(hoverAt(w.tile(1, 1).Position())) }, ShouldNotPanic)
				So(w.lawn().Coordinator.Highlighted(), ShouldHaveLength, 13)
				So(w.tile(1, 8).IsHighlighted(), ShouldBeTrue)
			})
		})
	})

	Convey("Given a manager without a grid", t, func() {
		em := ecs.NewEntityManager()
		hover := NewHoverSystem(em, em.CreateEntity(), nil)

		So(func() { hover.Update(hoverAt(grid.Vec3{})) }, ShouldNotPanic)
		_, ok := hover.Hovered()
		So(ok, ShouldBeFalse)
	})
}
