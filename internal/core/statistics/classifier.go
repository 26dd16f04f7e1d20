package statistics

import "strings"

// Category is a coarse condition bucket
type Category string

const (
	CategorySunny  Category = "sunny"
	CategoryCloudy Category = "cloudy"
	CategoryRainy  Category = "rainy"
	CategoryStormy Category = "stormy"
)

var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategorySunny, []string{"clear", "sun"}},
	{CategoryCloudy, []string{"cloud"}},
	{CategoryRainy, []string{"rain"}},
	{CategoryStormy, []string{"storm", "thunder"}},
}

// Classify maps a provider condition string to every category whose keyword it contains.
// Unknown conditions map to no category.
func Classify(condition string) []Category {
	lower := strings.ToLower(condition)

	var categories []Category
	for _, ck := range categoryKeywords {
		for _, kw := range ck.keywords {
			if strings.Contains(lower, kw) {
				categories = append(categories, ck.category)
				break
			}
		}
	}
	return categories
}

func (c *ConditionCounts) add(condition string) {
	for _, category := range Classify(condition) {
		switch category {
		case CategorySunny:
			c.Sunny++
		case CategoryCloudy:
			c.Cloudy++
		case CategoryRainy:
			c.Rainy++
		case CategoryStormy:
			c.Stormy++
		}
	}
}
