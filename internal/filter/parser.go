package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/GustavoCaso/spendwise/internal/expense"
)

// ParseCategory accepts a category name or "All" (case-insensitive).
// Empty input means All.
func ParseCategory(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, All) {
		return All, nil
	}

	cat, err := expense.ParseCategory(s)
	if err != nil {
		return "", err
	}
	return string(cat), nil
}

// ParseCategories parses a comma separated category list such as
// "Food,Bills". Empty input yields an empty list.
func ParseCategories(s string) ([]expense.Category, error) {
	if strings.TrimSpace(s) == "" {
		return []expense.Category{}, nil
	}

	parts := strings.Split(s, ",")
	categories := make([]expense.Category, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		cat, err := expense.ParseCategory(part)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// ValidateDate checks an optional YYYY-MM-DD bound.
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(expense.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return nil
}

// ParseCriteria builds criteria from raw CLI input.
func ParseCriteria(search, category, from, to string) (Criteria, error) {
	c := Criteria{Search: search}

	cat, err := ParseCategory(category)
	if err != nil {
		return c, fmt.Errorf("invalid category: %w", err)
	}
	c.Category = cat

	if err = ValidateDate(from); err != nil {
		return c, fmt.Errorf("invalid from date: %w", err)
	}
	if err = ValidateDate(to); err != nil {
		return c, fmt.Errorf("invalid to date: %w", err)
	}
	c.DateFrom = from
	c.DateTo = to

	return c, nil
}

// ParseExportOptions builds export options from raw CLI input.
func ParseExportOptions(categories, from, to string) (ExportOptions, error) {
	var o ExportOptions

	cats, err := ParseCategories(categories)
	if err != nil {
		return o, fmt.Errorf("invalid categories: %w", err)
	}
	o.Categories = cats

	if err = ValidateDate(from); err != nil {
		return o, fmt.Errorf("invalid from date: %w", err)
	}
	if err = ValidateDate(to); err != nil {
		return o, fmt.Errorf("invalid to date: %w", err)
	}
	o.DateFrom = from
	o.DateTo = to

	return o, nil
}
