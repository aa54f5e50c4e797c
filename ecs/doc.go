// Package ecs bridges rage stage interactions into a [Donburi] world.
//
// [NewDonburiStore] returns a store that publishes every click and hover the
// stage reports as an [Interaction] event. Nodes can be bound to entities so
// that systems receive the entity directly:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEntityStore(store)
//	store.CreateBound(hero.ID, hero.Name, Health)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
