package components

import (
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/yohamta/donburi"
)

// EntityID identifies a registered body. Zero means the body has not been
// assigned an id yet.
type EntityID uint64

// BodyData is the collision body shared by every entity variant.
type BodyData struct {
	ID       EntityID
	Position geom.Vec
	Hitbox   geom.Rect // relative to Position
}

// HitArea returns the hitbox in world space.
func (b *BodyData) HitArea() geom.Rect {
	return b.Hitbox.At(b.Position)
}

var Body = donburi.NewComponentType[BodyData]()
