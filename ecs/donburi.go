package ecs

import (
	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for sway transition events.
// Subscribe to this in your ECS systems to react when layer animations settle.
var TransitionEventType = events.NewEventType[sway.TransitionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Transition events are published to TransitionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sway.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sway.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
