// Package ecs bridges tactile interaction events into a Donburi world.
//
// [NewDonburiStore] publishes every pointer and click event that reaches a
// node with a non-zero EntityID as a typed Donburi event. Subscribe to
// [InteractionEventType] in your ECS systems to receive them:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
