package domain

// Category is the closed set of product categories in the catalog.
type Category string

const (
	CategoryHeadphones Category = "headphones"
	CategorySpeakers   Category = "speakers"
	CategoryEarphones  Category = "earphones"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryHeadphones, CategorySpeakers, CategoryEarphones:
		return true
	}
	return false
}
