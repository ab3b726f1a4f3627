// Package models provides the data structures used throughout the application.
package models

// Category is a spending category label.
type Category string

// String returns the label.
func (c Category) String() string {
	return string(c)
}

// AllCategories returns the closed category set in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryRent,
		CategorySubscriptions,
		CategoryUtilities,
		CategoryShopping,
		CategoryIncome,
		CategoryOther,
	}
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryConfig pairs a category with the keywords that select it.
type CategoryConfig struct {
	Name     Category `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the YAML document shape of a keyword table.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
