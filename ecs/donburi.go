package ecs

import (
	"github.com/phanxgames/rage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Interaction is a stage pointer event together with the entity bound to the
// node it hit. Entity is donburi.Null for unbound nodes and for stage-level
// events.
type Interaction struct {
	rage.InteractionEvent
	Entity donburi.Entity
}

// InteractionEventType is the Donburi event type for stage interaction
// events. Subscribe to it in your ECS systems to receive clicks and hovers.
var InteractionEventType = events.NewEventType[Interaction]()

// NodeRef links an entity back to the scene graph node it was bound to.
type NodeRef struct {
	NodeID uint32
	Name   string
}

// NodeRefComponent is set on entities created by CreateBound.
var NodeRefComponent = donburi.NewComponentType[NodeRef]()

// DonburiStore is a rage.EntityStore that publishes to a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[uint32]donburi.Entity)}
}

// World returns the backing world.
func (s *DonburiStore) World() donburi.World {
	return s.world
}

// Bind associates the node with the given ID with entity.
func (s *DonburiStore) Bind(nodeID uint32, entity donburi.Entity) {
	s.entities[nodeID] = entity
}

// Unbind removes the node's association.
func (s *DonburiStore) Unbind(nodeID uint32) {
	delete(s.entities, nodeID)
}

// CreateBound creates an entity carrying NodeRefComponent plus any extra
// components, and binds it to the node.
func (s *DonburiStore) CreateBound(nodeID uint32, name string, components ...donburi.IComponentType) donburi.Entity {
	e := s.world.Create(append([]donburi.IComponentType{NodeRefComponent}, components...)...)
	NodeRefComponent.SetValue(s.world.Entry(e), NodeRef{NodeID: nodeID, Name: name})
	s.Bind(nodeID, e)
	return e
}

// Entity returns the live entity bound to the node. Bindings to entities
// removed from the world are dropped.
func (s *DonburiStore) Entity(nodeID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[nodeID]
	if !ok {
		return donburi.Null, false
	}
	if !s.world.Valid(e) {
		delete(s.entities, nodeID)
		return donburi.Null, false
	}
	return e, true
}

// EmitEvent implements rage.EntityStore.
func (s *DonburiStore) EmitEvent(event rage.InteractionEvent) {
	e, _ := s.Entity(event.NodeID)
	InteractionEventType.Publish(s.world, Interaction{InteractionEvent: event, Entity: e})
}
