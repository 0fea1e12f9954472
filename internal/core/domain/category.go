package domain

import (
	"errors"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid habit category (must be health, productivity, learning, mindfulness, social or creative)")

type Category string

const (
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategoryMindfulness  Category = "mindfulness"
	CategorySocial       Category = "social"
	CategoryCreative     Category = "creative"
)

// Categories returns every habit category in display order.
func Categories() []Category {
	return []Category{
		CategoryHealth,
		CategoryProductivity,
		CategoryLearning,
		CategoryMindfulness,
		CategorySocial,
		CategoryCreative,
	}
}

func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryHealth, CategoryProductivity, CategoryLearning,
		CategoryMindfulness, CategorySocial, CategoryCreative:
		return true
	}
	return false
}

// Label is the capitalized name used by charts.
func (c Category) Label() string {
	switch c {
	case CategoryHealth:
		return "Health"
	case CategoryProductivity:
		return "Productivity"
	case CategoryLearning:
		return "Learning"
	case CategoryMindfulness:
		return "Mindfulness"
	case CategorySocial:
		return "Social"
	case CategoryCreative:
		return "Creative"
	}
	return string(c)
}
