package mockapi

import (
	"slices"

	"github.com/storefrontkit/checkout/internal/storage"
)

const connectionPrefix = "connection@"

// Connections tracks many-to-many associations between entities, keyed by
// (owner entity id, relation name). It is layered on the entity store using
// a synthesized per-owner prefix.
type Connections struct {
	store storage.Store
}

// NewConnections creates a connection store on top of store.
func NewConnections(store storage.Store) *Connections {
	return &Connections{store: store}
}

func (c *Connections) get(ownerID, relation string) []string {
	ids, _ := c.store.Get(connectionPrefix+ownerID, relation).([]string)
	return ids
}

// Connect adds relatedID under the owner's relation. Re-adding an id is a
// no-op; insertion order is preserved.
func (c *Connections) Connect(ownerID, relatedID, relation string) []string {
	ids := c.get(ownerID, relation)
	if !slices.Contains(ids, relatedID) {
		ids = append(ids, relatedID)
	}
	c.store.Set(connectionPrefix+ownerID, relation, ids)
	return ids
}

// Disconnect removes relatedID from the owner's relation, if present.
func (c *Connections) Disconnect(ownerID, relatedID, relation string) []string {
	ids := c.get(ownerID, relation)
	if i := slices.Index(ids, relatedID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	}
	c.store.Set(connectionPrefix+ownerID, relation, ids)
	return ids
}

// List returns the related ids under the owner's relation, in insertion
// order.
func (c *Connections) List(ownerID, relation string) []string {
	return slices.Clone(c.get(ownerID, relation))
}
