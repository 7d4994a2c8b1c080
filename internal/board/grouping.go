package board

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

// BucketKey addresses one column of a staff board.
type BucketKey struct {
	Category string
	Status   string
}

// BoardEntry is one cart item shown on a board, carrying enough of its
// parent order to render and sort the card.
type BoardEntry struct {
	OrderID   uuid.UUID
	User      order.User
	CreatedAt time.Time
	Item      order.CartItem
}

// GroupByCategoryStatus partitions every cart item across all orders
// into (category, status) buckets. Each item lands in exactly one
// bucket; bucket counts therefore count items, not orders. Within a
// bucket, entries are sorted by order creation time, newest first.
func GroupByCategoryStatus(orders []order.Order) map[BucketKey][]BoardEntry {
	buckets := make(map[BucketKey][]BoardEntry)

	for oi := range orders {
		o := &orders[oi]
		for _, item := range o.Cart {
			if item.Category != order.CategoryFood && item.Category != order.CategoryDrink {
				continue
			}
			key := BucketKey{Category: item.Category, Status: item.Status}
			buckets[key] = append(buckets[key], BoardEntry{
				OrderID:   o.ID,
				User:      o.User,
				CreatedAt: o.CreatedAt,
				Item:      item,
			})
		}
	}

	for key := range buckets {
		entries := buckets[key]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		})
	}

	return buckets
}

// BucketCount returns the number of items in one bucket.
func BucketCount(buckets map[BucketKey][]BoardEntry, category, status string) int {
	return len(buckets[BucketKey{Category: category, Status: status}])
}

// UserGroup aggregates every order a customer placed into one card.
type UserGroup struct {
	Username string
	Table    string
	Items    []order.CartItem
	Orders   []uuid.UUID

	// Image is the representative card image: the first food item's
	// image when one exists, otherwise the first item image available.
	Image string

	// LatestAt is the most recent order creation time in the group and
	// the group's sort key.
	LatestAt time.Time
}

// GuestName stands in when an order carries no username.
const GuestName = "Guest"

// GroupByUser folds all orders sharing a username into one group,
// preserving every item, and sorts the groups by their most recent
// order, newest first.
func GroupByUser(orders []order.Order) []UserGroup {
	byUser := make(map[string]*UserGroup)
	var names []string

	for oi := range orders {
		o := &orders[oi]
		name := o.User.Username
		if name == "" {
			name = GuestName
		}

		g, ok := byUser[name]
		if !ok {
			g = &UserGroup{Username: name, Table: o.User.Table}
			byUser[name] = g
			names = append(names, name)
		}

		g.Items = append(g.Items, o.Cart...)
		g.Orders = append(g.Orders, o.ID)
		if o.CreatedAt.After(g.LatestAt) {
			g.LatestAt = o.CreatedAt
		}
	}

	groups := make([]UserGroup, 0, len(names))
	for _, name := range names {
		g := byUser[name]
		g.Image = representativeImage(g.Items)
		groups = append(groups, *g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].LatestAt.After(groups[j].LatestAt)
	})

	return groups
}

func representativeImage(items []order.CartItem) string {
	for _, item := range items {
		if item.Category == order.CategoryFood && item.Image != "" {
			return item.Image
		}
	}
	for _, item := range items {
		if item.Image != "" {
			return item.Image
		}
	}
	return ""
}

// SplitByCompletion divides orders into waiting and completed using the
// derived order status as the single completion signal: an order is
// completed once every active item is ready or delivered.
func SplitByCompletion(orders []order.Order) (waiting, completed []order.Order) {
	for _, o := range orders {
		if o.Completed() {
			completed = append(completed, o)
		} else {
			waiting = append(waiting, o)
		}
	}
	return waiting, completed
}

// FilterItems returns the orders that have at least one item matching
// category and status, each narrowed to just those items, sorted by
// creation time, newest first. This is the shape the board columns
// render directly.
func FilterItems(orders []order.Order, category, status string) []order.Order {
	var out []order.Order

	for _, o := range orders {
		var matched []order.CartItem
		for _, item := range o.Cart {
			if item.Category == category && item.Status == status {
				matched = append(matched, item)
			}
		}
		if len(matched) == 0 {
			continue
		}
		narrowed := o
		narrowed.Cart = matched
		out = append(out, narrowed)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
