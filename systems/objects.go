package systems

import (
	"github.com/automoto/kagerun/components"
	"github.com/automoto/kagerun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The resolv space starts at the level origin, so objects are stored
// relative to it. Queries through it are a broad phase only: callers
// confirm with the exact rects afterwards.

// SyncObject moves an entry's collision object onto rect, adding it to the
// current space if it is not there yet.
func SyncObject(e *ecs.ECS, entry *donburi.Entry, rect gamemath.Rect) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	origin := GetOrCreateLevel(e).Origin
	obj.X = rect.X - origin.X
	obj.Y = rect.Y - origin.Y
	obj.W = rect.W
	obj.H = rect.H
	// A level load replaces the space; move the object over.
	if space := getSpace(e); obj.Space != space {
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		if space != nil {
			space.Add(obj.Object)
		}
		return
	}
	if obj.Space != nil {
		obj.Update()
	}
}

// UpdateObjects syncs every actor's collision object with its component.
func UpdateObjects(e *ecs.ECS) {
	for entry := range components.Object.Iter(e.World) {
		if rect, ok := entryRect(entry); ok {
			SyncObject(e, entry, rect)
		}
	}
}

// RemoveObject takes an entry's object out of the space.
func RemoveObject(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil || obj.Space == nil {
		return
	}
	obj.Space.Remove(obj.Object)
}

func entryRect(entry *donburi.Entry) (gamemath.Rect, bool) {
	switch {
	case entry.HasComponent(components.Body):
		return components.Body.Get(entry).Rect(), true
	case entry.HasComponent(components.Crumble):
		return components.Crumble.Get(entry).Rect(), true
	case entry.HasComponent(components.Pickup):
		return components.Pickup.Get(entry).Rect(), true
	case entry.HasComponent(components.Spike):
		return components.Spike.Get(entry).Hitbox, true
	}
	return gamemath.Rect{}, false
}

// nearby returns the entries tagged tag that share space cells with entry
// once it is shifted down by dy.
func nearby(entry *donburi.Entry, dy float64, tag string) []*donburi.Entry {
	if !entry.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, dy, tag)
	if check == nil {
		return nil
	}
	var found []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		other, ok := o.Data.(*donburi.Entry)
		if ok && other.Valid() {
			found = append(found, other)
		}
	}
	return found
}
