package expense

import (
	"fmt"
	"strings"
)

type Category string

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Bills          Category = "Bills"
	Other          Category = "Other"
)

var allCategories = []Category{
	Food,
	Transportation,
	Entertainment,
	Shopping,
	Bills,
	Other,
}

// Categories returns the fixed category set in declaration order.
// The returned slice is a copy.
func Categories() []Category {
	result := make([]Category, len(allCategories))
	copy(result, allCategories)
	return result
}

func (c Category) Valid() bool {
	switch c {
	case Food, Transportation, Entertainment, Shopping, Bills, Other:
		return true
	}
	return false
}

// Index is the position of the category in declaration order, -1 when unknown.
func (c Category) Index() int {
	for i, cat := range allCategories {
		if cat == c {
			return i
		}
	}
	return -1
}

// Color returns the display color used by the CLI for the category.
func (c Category) Color() string {
	switch c {
	case Food:
		return "green"
	case Transportation:
		return "blue"
	case Entertainment:
		return "magenta"
	case Shopping:
		return "yellow"
	case Bills:
		return "red"
	case Other:
		return "cyan"
	}
	return ""
}

// ParseCategory matches input against the category set ignoring case and
// surrounding spaces.
func ParseCategory(input string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", input)
}
