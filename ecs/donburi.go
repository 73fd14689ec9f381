package ecs

import (
	"github.com/phanxgames/tactile"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for tactile interaction
// events. Events are queued on publish; call ProcessEvents to deliver them.
var InteractionEventType = events.NewEventType[tactile.InteractionEvent]()

type donburiStore struct {
	world donburi.World
	only  map[tactile.EventType]bool
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. When kinds
// are given only those event types are published; otherwise all of them are.
func NewDonburiStore(world donburi.World, kinds ...tactile.EventType) tactile.EntityStore {
	s := &donburiStore{world: world}
	if len(kinds) > 0 {
		s.only = make(map[tactile.EventType]bool, len(kinds))
		for _, k := range kinds {
			s.only[k] = true
		}
	}
	return s
}

func (s *donburiStore) EmitEvent(event tactile.InteractionEvent) {
	if s.only != nil && !s.only[event.Type] {
		return
	}
	InteractionEventType.Publish(s.world, event)
}
