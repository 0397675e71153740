package models

import (
	"github.com/shopspring/decimal"
)

// BucketSuggestion is a template for creating a bucket.
type BucketSuggestion struct {
	Name       string          `json:"name" example:"Groceries"`
	Slug       string          `json:"slug" example:"groceries"`
	Color      string          `json:"color" example:"#22c55e"`
	Icon       string          `json:"icon" example:"shopping-cart"`
	Percentage decimal.Decimal `json:"percentage" example:"30"`
}

// BucketSuggestions are the seed templates offered when a user sets up
// their buckets. All of them are percentage buckets, users adjust the
// shares and add fixed buckets afterwards.
func BucketSuggestions() []BucketSuggestion {
	return []BucketSuggestion{
		{Name: "Groceries", Slug: "groceries", Color: "#22c55e", Icon: "shopping-cart", Percentage: decimal.NewFromInt(30)},
		{Name: "Dining out", Slug: "dining-out", Color: "#f97316", Icon: "utensils", Percentage: decimal.NewFromInt(10)},
		{Name: "Transport", Slug: "transport", Color: "#3b82f6", Icon: "car", Percentage: decimal.NewFromInt(10)},
		{Name: "Savings", Slug: "savings", Color: "#eab308", Icon: "piggy-bank", Percentage: decimal.NewFromInt(20)},
		{Name: "Entertainment", Slug: "entertainment", Color: "#a855f7", Icon: "film", Percentage: decimal.NewFromInt(10)},
		{Name: "Miscellaneous", Slug: "miscellaneous", Color: "#64748b", Icon: "box", Percentage: decimal.NewFromInt(20)},
	}
}
