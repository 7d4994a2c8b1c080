package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item status pipeline. Transitions only move forward; Cancelled is a
// terminal side exit.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Categories a cart item can belong to.
const (
	CategoryFood  = "food"
	CategoryDrink = "drink"
)

var statusRank = map[string]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusDelivered: 3,
}

// ValidStatus reports whether s names a pipeline status.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok || s == StatusCancelled
}

// StatusRank returns the position of s in the pipeline, -1 for
// cancelled or unknown statuses.
func StatusRank(s string) int {
	r, ok := statusRank[s]
	if !ok {
		return -1
	}
	return r
}

// CanAdvance reports whether moving from one status to the next is a
// forward transition. Equal or backward moves are rejected.
func CanAdvance(from, to string) bool {
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr > fr
}

// User identifies who placed the order: a display name and a table
// number, or a takeaway marker instead of a table.
type User struct {
	Username string `json:"username" bson:"username"`
	Table    string `json:"table" bson:"table"`
}

// CartItem is one ordered line: a menu item snapshot plus the requested
// quantity, free-text notes and its own progress status.
type CartItem struct {
	ID       uuid.UUID `json:"id" bson:"id"`
	Name     string    `json:"name" bson:"name"`
	Category string    `json:"category" bson:"category"`
	Image    string    `json:"image,omitempty" bson:"image,omitempty"`
	Price    float64   `json:"price,omitempty" bson:"price,omitempty"`
	Quantity int       `json:"quantity" bson:"quantity"`
	Notes    string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status   string    `json:"status" bson:"status"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty" bson:"delivered_at,omitempty"`
}

// AdvanceTo moves the item to status, enforcing the forward-only
// pipeline. Cancelling is allowed from any non-delivered status.
func (ci *CartItem) AdvanceTo(status string) error {
	if status == StatusCancelled {
		if ci.Status == StatusDelivered {
			return fmt.Errorf("cannot cancel a delivered item")
		}
		ci.Status = StatusCancelled
		return nil
	}
	if !CanAdvance(ci.Status, status) {
		return fmt.Errorf("cannot move item from %q to %q", ci.Status, status)
	}
	ci.Status = status
	if status == StatusDelivered {
		now := time.Now()
		ci.DeliveredAt = &now
	}
	return nil
}

// Order is a single checkout submission: one user's full cart.
// IsReady is the coarse order-level flag kept for API compatibility;
// views derive completion from item statuses instead (see DerivedStatus).
type Order struct {
	ID        uuid.UUID  `json:"id" bson:"_id"`
	User      User       `json:"user" bson:"user"`
	Cart      []CartItem `json:"cart" bson:"cart"`
	IsReady   bool       `json:"is_ready" bson:"is_ready"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

func NewOrder(user User, cart []CartItem) *Order {
	o := &Order{
		ID:   uuid.New(),
		User: user,
		Cart: cart,
	}
	for i := range o.Cart {
		if o.Cart[i].ID == uuid.Nil {
			o.Cart[i].ID = uuid.New()
		}
		if o.Cart[i].Status == "" {
			o.Cart[i].Status = StatusPending
		}
	}
	return o
}

func (o *Order) GetID() uuid.UUID { return o.ID }

func (o *Order) ResourceType() string { return "order" }

func (o *Order) EnsureID() {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
}

func (o *Order) BeforeCreate() {
	o.EnsureID()
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
}

func (o *Order) BeforeUpdate() {
	o.UpdatedAt = time.Now()
}

// Item returns the cart item with the given id, nil when absent.
func (o *Order) Item(itemID uuid.UUID) *CartItem {
	for i := range o.Cart {
		if o.Cart[i].ID == itemID {
			return &o.Cart[i]
		}
	}
	return nil
}

// DerivedStatus aggregates item statuses up to one order-level status.
// It is the single completion signal the views rely on:
//
//	delivered — every non-cancelled item delivered
//	ready     — every non-cancelled item ready or delivered
//	preparing — at least one item past pending
//	pending   — otherwise
//
// An order whose items were all cancelled counts as delivered for the
// purpose of leaving the waiting views.
func (o *Order) DerivedStatus() string {
	active := 0
	allDelivered := true
	allReady := true
	anyStarted := false

	for i := range o.Cart {
		item := &o.Cart[i]
		if item.Status == StatusCancelled {
			continue
		}
		active++
		if item.Status != StatusDelivered {
			allDelivered = false
		}
		if item.Status != StatusReady && item.Status != StatusDelivered {
			allReady = false
		}
		if StatusRank(item.Status) > statusRank[StatusPending] {
			anyStarted = true
		}
	}

	switch {
	case active == 0 || allDelivered:
		return StatusDelivered
	case allReady:
		return StatusReady
	case anyStarted:
		return StatusPreparing
	default:
		return StatusPending
	}
}

// Completed reports whether the order left the waiting pipeline.
func (o *Order) Completed() bool {
	s := o.DerivedStatus()
	return s == StatusReady || s == StatusDelivered
}
