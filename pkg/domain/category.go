package domain

import (
	"slices"
	"strings"
)

// Category is one of the fixed interest tags members subscribe to
type Category string

// known interest tags, none of them may contain a comma
const (
	CategoryLegal     Category = "Legal"
	CategoryTech      Category = "Tech"
	CategoryHealth    Category = "Health"
	CategoryEducation Category = "Education"
	CategoryBusiness  Category = "Business"
	CategoryFinance   Category = "Finance"
	CategoryHousing   Category = "Housing"
	CategoryJobs      Category = "Jobs"
	CategoryCulture   Category = "Culture"
	CategoryCommunity Category = "Community"
)

// Categories lists all known interest tags
var Categories = []Category{
	CategoryLegal, CategoryTech, CategoryHealth, CategoryEducation, CategoryBusiness,
	CategoryFinance, CategoryHousing, CategoryJobs, CategoryCulture, CategoryCommunity,
}

// Valid reports whether c is a known tag
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Canonical returns the tag without surrounding whitespace
func (c Category) Canonical() Category {
	return Category(strings.TrimSpace(string(c)))
}

// CanonicalCategories trims, drops empty and duplicate entries and sorts the result
func CanonicalCategories(cats []Category) []Category {
	res := make([]Category, 0, len(cats))
	for _, c := range cats {
		c = c.Canonical()
		if c == "" || slices.Contains(res, c) {
			continue
		}
		res = append(res, c)
	}
	slices.Sort(res)
	return res
}
