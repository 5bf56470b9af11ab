package domain

import (
	"fmt"
	"time"
)

// Event actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event entities
const (
	EntityCollection = "collection"
	EntityProduct    = "product"
)

// CatalogEvent announces a committed change to a collection or product
type CatalogEvent struct {
	Entity     string      `json:"entity"`
	Action     string      `json:"action"`
	ID         int64       `json:"id"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload,omitempty"`
}

// Key is the message key, e.g. "product.created.42".
func (e CatalogEvent) Key() string {
	return fmt.Sprintf("%s.%s.%d", e.Entity, e.Action, e.ID)
}
