package entity

// DefaultCategoryColor is used when upstream sends no color for a category.
const DefaultCategoryColor = "#6B7280"

// Category is an expense category from the upstream reference list.
type Category struct {
	ID             int64
	Name           string
	Color          string
	AffectsBalance bool
	Order          int
	Active         bool
}
