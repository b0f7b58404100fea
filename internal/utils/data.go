package utils

import (
	"errors"
	"time"
)

// ErrNegativeValue is returned by Percentage for negative inputs.
var ErrNegativeValue = errors.New("utils: values cannot be negative")

// Percentage computes part/total as a percentage. A zero total yields
// 0 rather than an error.
func Percentage(part, total int) (float64, error) {
	if total == 0 {
		return 0, nil
	}
	if part < 0 || total < 0 {
		return 0, ErrNegativeValue
	}
	return float64(part) / float64(total) * 100, nil
}

// GroupBy partitions items by the key function, preserving the input
// order within each group.
func GroupBy[K comparable, T any](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// FilterByDateRange keeps items whose date (as reported by the
// accessor) falls within [from, to]. Items without a date are dropped;
// nil bounds are open.
func FilterByDateRange[T any](items []T, date func(T) (time.Time, bool), from, to *time.Time) []T {
	var filtered []T
	for _, item := range items {
		d, ok := date(item)
		if !ok {
			continue
		}
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(*to) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
