package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Title string `json:"title"`
}

type Item struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric"`
	Image       string          `json:"image"`
	CategoryID  *uint           `json:"categoryId"`
}
