package models

import "time"

// MenuKind distinguishes the two menu collections. Foods and drinks
// share a shape but live in separate collections with independent
// id counters.
type MenuKind string

const (
	MenuKindFood  MenuKind = "food"
	MenuKindDrink MenuKind = "drink"
)

// MenuItem represents a food or drink on the menu
type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MenuItemRequest is used for menu item creation
type MenuItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Description string  `json:"description"`
}

// MenuItemUpdateRequest is used for partial menu item updates.
// Fields left nil are preserved.
type MenuItemUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
}
