package model

import (
	"github.com/shopspring/decimal"
)

// MenuCategory identifies a menu section.
type MenuCategory string

const (
	CategoryCorndogs     MenuCategory = "corndogs"
	CategoryFriedChicken MenuCategory = "korean-fried-chicken"
	CategoryRiceBowls    MenuCategory = "rice-bowls"
	CategoryNoodles      MenuCategory = "noodles"
	CategorySides        MenuCategory = "sides"
	CategoryDesserts     MenuCategory = "desserts"
	CategoryDrinks       MenuCategory = "drinks"
	CategorySpecials     MenuCategory = "specials"
)

// CategoryNames maps categories to their display names.
var CategoryNames = map[MenuCategory]string{
	CategoryCorndogs:     "Korean Corndogs",
	CategoryFriedChicken: "Korean Fried Chicken",
	CategoryRiceBowls:    "Rice Bowls",
	CategoryNoodles:      "Korean Noodles",
	CategorySides:        "Sides & Appetizers",
	CategoryDesserts:     "Korean Desserts",
	CategoryDrinks:       "Korean Beverages",
	CategorySpecials:     "Daily Specials",
}

// CustomizationGroup is a named set of choices on a menu item, e.g. the
// coating or filling of a corndog.
type CustomizationGroup struct {
	Name     string   `json:"name"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

// MenuItem is immutable catalog reference data. The cart only reads
// id/name/price/category and the customization selections made against it.
type MenuItem struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	KoreanName           string               `json:"korean_name,omitempty"`
	Description          string               `json:"description"`
	Price                decimal.Decimal      `json:"price"`
	Category             MenuCategory         `json:"category"`
	Allergens            []string             `json:"allergens,omitempty"`
	DietaryInfo          []string             `json:"dietary_info,omitempty"`
	IsPopular            bool                 `json:"is_popular"`
	CustomizationOptions []CustomizationGroup `json:"customization_options,omitempty"`
	ImageURL             string               `json:"image_url,omitempty"`
}
