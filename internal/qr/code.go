package qr

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TakeawayCode is the fixed marker accepted alongside numeric table
// codes, for customers ordering without a table.
const TakeawayCode = "takeaway"

// Table QR codes are the numbers 1..100 printed on the tables.
const maxTableCode = 100

// Code records a consumed QR code. A code can be used once; a second
// scan is rejected so two parties cannot claim the same table slot.
type Code struct {
	ID     uuid.UUID `json:"id" bson:"_id"`
	Code   string    `json:"code" bson:"code"`
	UsedAt time.Time `json:"used_at" bson:"used_at"`
}

func NewCode(value string) *Code {
	return &Code{
		ID:     uuid.New(),
		Code:   value,
		UsedAt: time.Now(),
	}
}

func (c *Code) GetID() uuid.UUID { return c.ID }

func (c *Code) ResourceType() string { return "qr-code" }

// ValidValue reports whether value is an acceptable QR payload: a table
// number in range, or the takeaway marker.
func ValidValue(value string) bool {
	if value == TakeawayCode {
		return true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return false
	}
	return n >= 1 && n <= maxTableCode
}

type Repo interface {
	Create(ctx context.Context, code *Code) error

	// FindByValue returns the usage record for a code value, nil when
	// the code has not been used yet.
	FindByValue(ctx context.Context, value string) (*Code, error)
}
