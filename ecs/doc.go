// Package ecs provides ECS adapters for sway's transition events.
//
// The primary adapter is [NewDonburiStore], which bridges sway transition
// results (a channel animation on a layer completing or being interrupted)
// into a [Donburi] world as typed events. Subscribe to [TransitionEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
