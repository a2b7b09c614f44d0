package domain

import "time"

type Order struct {
	ID            string      `json:"id"`
	RestaurantID  string      `json:"-"`
	TableID       *string     `json:"tableId,omitempty"`
	TableNumber   *int        `json:"tableNumber,omitempty"`
	Status        string      `json:"status"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Tip           float64     `json:"tip"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	PaymentStatus string      `json:"paymentStatus"`
	ItemCount     int         `json:"itemCount"`
	CreatedAt     time.Time   `json:"createdAt"`
	Items         []OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots the menu item name and price at purchase time so
// historical orders are decoupled from later menu edits.
type OrderItem struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	MenuItemID *string   `json:"menuItemId,omitempty"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	Subtotal   float64   `json:"subtotal"`
	CreatedAt  time.Time `json:"createdAt"`
}
