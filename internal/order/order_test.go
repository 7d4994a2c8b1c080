package order

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewOrder(t *testing.T) {
	cart := []CartItem{
		{Name: "Kopi Susu", Category: CategoryDrink, Quantity: 1},
		{Name: "Nasi Goreng", Category: CategoryFood, Quantity: 2},
	}
	o := NewOrder(User{Username: "Dina", Table: "4"}, cart)

	if o == nil {
		t.Fatal("NewOrder() returned nil")
	}
	if o.ID == uuid.Nil {
		t.Error("NewOrder() should generate a non-nil UUID")
	}
	for i, item := range o.Cart {
		if item.ID == uuid.Nil {
			t.Errorf("NewOrder() Cart[%d].ID should be non-nil", i)
		}
		if item.Status != StatusPending {
			t.Errorf("NewOrder() Cart[%d].Status = %q, want %q", i, item.Status, StatusPending)
		}
	}
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "pending", status: StatusPending, want: true},
		{name: "preparing", status: StatusPreparing, want: true},
		{name: "ready", status: StatusReady, want: true},
		{name: "delivered", status: StatusDelivered, want: true},
		{name: "cancelled", status: StatusCancelled, want: true},
		{name: "unknown", status: "done", want: false},
		{name: "empty", status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidStatus(tt.status); got != tt.want {
				t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pendingToPreparing", from: StatusPending, to: StatusPreparing, want: true},
		{name: "pendingToReady", from: StatusPending, to: StatusReady, want: true},
		{name: "preparingToDelivered", from: StatusPreparing, to: StatusDelivered, want: true},
		{name: "readyToDelivered", from: StatusReady, to: StatusDelivered, want: true},
		{name: "sameStatus", from: StatusReady, to: StatusReady, want: false},
		{name: "backward", from: StatusReady, to: StatusPending, want: false},
		{name: "deliveredToReady", from: StatusDelivered, to: StatusReady, want: false},
		{name: "fromCancelled", from: StatusCancelled, to: StatusReady, want: false},
		{name: "toUnknown", from: StatusPending, to: "done", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdvance(tt.from, tt.to); got != tt.want {
				t.Errorf("CanAdvance(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCartItemAdvanceTo(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{name: "forwardMove", from: StatusPending, to: StatusReady, wantErr: false},
		{name: "skipStage", from: StatusPending, to: StatusDelivered, wantErr: false},
		{name: "backwardMove", from: StatusReady, to: StatusPreparing, wantErr: true},
		{name: "repeatStatus", from: StatusReady, to: StatusReady, wantErr: true},
		{name: "cancelPending", from: StatusPending, to: StatusCancelled, wantErr: false},
		{name: "cancelReady", from: StatusReady, to: StatusCancelled, wantErr: false},
		{name: "cancelDelivered", from: StatusDelivered, to: StatusCancelled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &CartItem{Status: tt.from}
			err := item.AdvanceTo(tt.to)

			if (err != nil) != tt.wantErr {
				t.Fatalf("AdvanceTo(%q) error = %v, wantErr %v", tt.to, err, tt.wantErr)
			}
			if err == nil && item.Status != tt.to {
				t.Errorf("AdvanceTo(%q) left status %q", tt.to, item.Status)
			}
			if err != nil && item.Status != tt.from {
				t.Errorf("AdvanceTo(%q) mutated status to %q on failure", tt.to, item.Status)
			}
		})
	}
}

func TestCartItemAdvanceToDeliveredStampsTime(t *testing.T) {
	item := &CartItem{Status: StatusReady}
	if err := item.AdvanceTo(StatusDelivered); err != nil {
		t.Fatalf("AdvanceTo(delivered) error = %v", err)
	}
	if item.DeliveredAt == nil {
		t.Error("AdvanceTo(delivered) should stamp DeliveredAt")
	}
}

func TestOrderItem(t *testing.T) {
	itemID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440010")
	o := &Order{
		Cart: []CartItem{
			{ID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440011")},
			{ID: itemID, Name: "Es Teh"},
		},
	}

	got := o.Item(itemID)
	if got == nil {
		t.Fatal("Item() returned nil for existing item")
	}
	if got.Name != "Es Teh" {
		t.Errorf("Item() Name = %q, want %q", got.Name, "Es Teh")
	}

	if o.Item(uuid.New()) != nil {
		t.Error("Item() should return nil for unknown id")
	}
}

func TestOrderDerivedStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{name: "allPending", statuses: []string{StatusPending, StatusPending}, want: StatusPending},
		{name: "oneStarted", statuses: []string{StatusPending, StatusPreparing}, want: StatusPreparing},
		{name: "mixedReadyPending", statuses: []string{StatusReady, StatusPending}, want: StatusPreparing},
		{name: "allReady", statuses: []string{StatusReady, StatusReady}, want: StatusReady},
		{name: "readyAndDelivered", statuses: []string{StatusReady, StatusDelivered}, want: StatusReady},
		{name: "allDelivered", statuses: []string{StatusDelivered, StatusDelivered}, want: StatusDelivered},
		{name: "cancelledIgnored", statuses: []string{StatusCancelled, StatusReady}, want: StatusReady},
		{name: "allCancelled", statuses: []string{StatusCancelled, StatusCancelled}, want: StatusDelivered},
		{name: "emptyCart", statuses: nil, want: StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{}
			for _, s := range tt.statuses {
				o.Cart = append(o.Cart, CartItem{ID: uuid.New(), Status: s})
			}
			if got := o.DerivedStatus(); got != tt.want {
				t.Errorf("DerivedStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrderCompleted(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     bool
	}{
		{name: "pendingNotCompleted", statuses: []string{StatusPending}, want: false},
		{name: "preparingNotCompleted", statuses: []string{StatusPreparing, StatusReady}, want: false},
		{name: "allReadyCompleted", statuses: []string{StatusReady}, want: true},
		{name: "allDeliveredCompleted", statuses: []string{StatusDelivered, StatusDelivered}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{}
			for _, s := range tt.statuses {
				o.Cart = append(o.Cart, CartItem{ID: uuid.New(), Status: s})
			}
			if got := o.Completed(); got != tt.want {
				t.Errorf("Completed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderEnsureID(t *testing.T) {
	tests := []struct {
		name        string
		order       *Order
		expectNewID bool
	}{
		{
			name:        "generatesIDWhenNil",
			order:       &Order{ID: uuid.Nil},
			expectNewID: true,
		},
		{
			name:        "preservesExistingID",
			order:       &Order{ID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440002")},
			expectNewID: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalID := tt.order.ID
			tt.order.EnsureID()

			if tt.expectNewID {
				if tt.order.ID == uuid.Nil {
					t.Error("EnsureID() should generate non-nil UUID")
				}
			} else {
				if tt.order.ID != originalID {
					t.Errorf("EnsureID() changed existing ID from %v to %v", originalID, tt.order.ID)
				}
			}
		})
	}
}

func TestOrderBeforeCreate(t *testing.T) {
	o := &Order{}
	o.BeforeCreate()

	if o.ID == uuid.Nil {
		t.Error("BeforeCreate() should ensure a non-nil ID")
	}
	if o.CreatedAt.IsZero() {
		t.Error("BeforeCreate() should set CreatedAt")
	}
	if o.UpdatedAt.IsZero() {
		t.Error("BeforeCreate() should set UpdatedAt")
	}
}
