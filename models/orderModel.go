package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses form a closed set. Orders start out Pending; admin or
// staff move them between members of the set, never outside it.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusDelivered  = "Delivered"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID    int             `json:"userId"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Address1  string          `json:"address1"`
	Address2  string          `json:"address2"`
	Country   string          `json:"country"`
	State     string          `json:"state"`
	Zip       string          `json:"zip"`
	Payment   string          `json:"payment"`
	Total     decimal.Decimal `json:"total" gorm:"type:numeric"`
	Status    string          `json:"status"`

	OrderItems []OrderItem `json:"orderItems,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots name and price at purchase time. Later catalog
// edits or deletes never change a historical order.
type OrderItem struct {
	gorm.Model
	OrderID  int             `json:"orderId"`
	ItemID   int             `json:"itemId"`
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price" gorm:"type:numeric"`
}

type CheckoutItem struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CheckoutRequest struct {
	FirstName string         `json:"firstName" binding:"required"`
	LastName  string         `json:"lastName" binding:"required"`
	Address1  string         `json:"address1" binding:"required"`
	Address2  string         `json:"address2"`
	Country   string         `json:"country" binding:"required"`
	State     string         `json:"state" binding:"required"`
	Zip       string         `json:"zip" binding:"required"`
	Payment   string         `json:"payment" binding:"required"`
	Items     []CheckoutItem `json:"items"`
}

// OrderItemDetail is a line item joined with the catalog image for the
// order detail view.
type OrderItemDetail struct {
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
}
