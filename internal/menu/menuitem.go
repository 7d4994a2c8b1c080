package menu

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is an offerable dish or drink managed from the admin screen.
// Dessert and Label are the category-specific attributes: dessert info
// only applies to food, label only to drinks.
type MenuItem struct {
	ID       uuid.UUID `json:"id" bson:"_id"`
	Name     string    `json:"name" bson:"name"`
	Category string    `json:"category" bson:"category"`
	Image    string    `json:"image,omitempty" bson:"image,omitempty"`
	Price    float64   `json:"price,omitempty" bson:"price,omitempty"`

	// Quantity is the available stock. Ordering does not decrement it;
	// corrections come through the admin update endpoint.
	Quantity int `json:"quantity" bson:"quantity"`

	Dessert *string `json:"dessert,omitempty" bson:"dessert,omitempty"`
	Label   *string `json:"label,omitempty" bson:"label,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (m *MenuItem) GetID() uuid.UUID { return m.ID }

func (m *MenuItem) ResourceType() string { return "menu" }

func (m *MenuItem) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

func (m *MenuItem) BeforeCreate() {
	m.EnsureID()
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *MenuItem) BeforeUpdate() {
	m.UpdatedAt = time.Now()
}

// MenuItemUpdate carries a partial update; nil fields are left alone.
type MenuItemUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Dessert  *string  `json:"dessert,omitempty"`
	Label    *string  `json:"label,omitempty"`
}

// Apply copies the set fields of the update onto the item.
func (u MenuItemUpdate) Apply(m *MenuItem) {
	if u.Name != nil {
		m.Name = ToTitleCase(*u.Name)
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.Image != nil {
		m.Image = *u.Image
	}
	if u.Price != nil {
		m.Price = *u.Price
	}
	if u.Quantity != nil {
		m.Quantity = *u.Quantity
	}
	if u.Dessert != nil {
		m.Dessert = u.Dessert
	}
	if u.Label != nil {
		m.Label = u.Label
	}
	m.BeforeUpdate()
}
