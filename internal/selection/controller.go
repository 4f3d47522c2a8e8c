package selection

import "github.com/lucky7xz/datacard/internal/card"

// Controller handles activation for one grid. A non-clickable controller
// never reads or writes the store.
type Controller struct {
	store     *Store
	key       string
	clickable bool
}

// NewController binds a controller to a grid key.
func NewController(store *Store, key string, clickable bool) Controller {
	return Controller{store: store, key: key, clickable: clickable}
}

// Clickable reports whether cards can be activated.
func (c Controller) Clickable() bool { return c.clickable }

// Key returns the grid identity key.
func (c Controller) Key() string { return c.key }

// Activate selects the card at index and returns the new state. It is a no-op
// on a non-clickable grid.
func (c Controller) Activate(index int, rec card.Record) State {
	if !c.clickable || c.store == nil {
		return State{}
	}
	return c.store.Set(c.key, index, rec)
}

// Current returns the last-known state for the grid.
func (c Controller) Current() State {
	if !c.clickable || c.store == nil {
		return State{}
	}
	return c.store.Get(c.key)
}
