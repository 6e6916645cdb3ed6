package habit

import (
	"fmt"
	"strings"
)

// Category groups habits for filtering.
type Category string

const (
	CategoryNone         Category = "none"
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryLearning     Category = "learning"
	CategoryMindfulness  Category = "mindfulness"
	CategoryProductivity Category = "productivity"
	CategorySocial       Category = "social"
	CategoryCreative     Category = "creative"
	CategoryOther        Category = "other"
)

type categoryInfo struct {
	label string
	emoji string
}

var categories = map[Category]categoryInfo{
	CategoryNone:         {label: "All"},
	CategoryHealth:       {label: "Health", emoji: "🏥"},
	CategoryFitness:      {label: "Fitness", emoji: "💪"},
	CategoryLearning:     {label: "Learning", emoji: "📚"},
	CategoryMindfulness:  {label: "Mindfulness", emoji: "🧘"},
	CategoryProductivity: {label: "Productivity", emoji: "⚡"},
	CategorySocial:       {label: "Social", emoji: "👥"},
	CategoryCreative:     {label: "Creative", emoji: "🎨"},
	CategoryOther:        {label: "Other", emoji: "📌"},
}

// AllCategories returns the supported categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryNone,
		CategoryHealth,
		CategoryFitness,
		CategoryLearning,
		CategoryMindfulness,
		CategoryProductivity,
		CategorySocial,
		CategoryCreative,
		CategoryOther,
	}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values. Empty input is CategoryNone.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return CategoryNone, nil
	}
	if _, ok := categories[c]; ok {
		return c, nil
	}
	return CategoryNone, fmt.Errorf("habit: unknown category %q", raw)
}

// Or returns c, or CategoryNone when c is unset.
func (c Category) Or() Category {
	if c == "" {
		return CategoryNone
	}
	return c
}

func (c Category) Label() string {
	return categories[c.Or()].label
}

func (c Category) Emoji() string {
	return categories[c.Or()].emoji
}

func (c Category) String() string {
	if e := c.Emoji(); e != "" {
		return e + " " + c.Label()
	}
	return c.Label()
}
