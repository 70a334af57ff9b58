// internal/models/product.go
package models

import "strings"

// DefaultCategory is assigned when a product is created without a category.
const DefaultCategory = "General"

type Product struct {
	BaseModel
	Name          string  `json:"name" gorm:"size:80;not null"`
	SKU           string  `json:"sku" gorm:"size:50;not null;uniqueIndex"`
	Category      string  `json:"category" gorm:"size:60;not null;default:'General';index"`
	PurchasePrice float64 `json:"purchasePrice" gorm:"type:decimal(12,2);not null"`
	SalePrice     float64 `json:"salePrice" gorm:"type:decimal(12,2);not null"`
	Quantity      int     `json:"quantity" gorm:"not null;default:0"`
}

// NormalizeSKU trims and upper-cases a SKU the way it is persisted.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
