package menu

import (
	"strings"
)

const (
	CategoryFood  = "food"
	CategoryDrink = "drink"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ToTitleCase normalizes a menu item name: lowercase, then each word
// capitalized. Names are compared in this form for duplicate detection.
func ToTitleCase(text string) string {
	if text == "" {
		return ""
	}

	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ValidateCreateMenuItem validates a menu item before creation.
func ValidateCreateMenuItem(item *MenuItem) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(item.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	switch item.Category {
	case CategoryFood:
		if item.Label != nil {
			errs = append(errs, ValidationError{
				Field:   "label",
				Message: "label only applies to drinks",
			})
		}
	case CategoryDrink:
		if item.Dessert != nil {
			errs = append(errs, ValidationError{
				Field:   "dessert",
				Message: "dessert only applies to food",
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "category",
			Message: "category must be one of: food, drink",
		})
	}

	if item.Quantity < 0 {
		errs = append(errs, ValidationError{
			Field:   "quantity",
			Message: "quantity cannot be negative",
		})
	}

	if item.Price < 0 {
		errs = append(errs, ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}

	return errs
}
