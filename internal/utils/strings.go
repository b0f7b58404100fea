package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[-\s]+`)
	numberPattern = regexp.MustCompile(`-?\d+`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Slugify converts text to a URL-friendly slug.
func Slugify(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(text), "")
	slug = slugSeparator.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Truncate shortens text to at most maxLength runes, appending suffix
// when anything was cut off.
func Truncate(text string, maxLength int, suffix string) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if len(text) <= maxLength {
		return text
	}
	keep := maxLength - len(suffix)
	if keep < 0 {
		return suffix[:maxLength]
	}
	return text[:keep] + suffix
}

// ExtractNumbers returns every integer embedded in text, in order.
func ExtractNumbers(text string) []int {
	matches := numberPattern.FindAllString(text, -1)
	nums := make([]int, 0, len(matches))
	for _, m := range matches {
		if n, err := strconv.Atoi(m); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}

// MaskEmail hides the local part of an email for display, keeping the
// first character and the domain. Invalid emails pass through as-is.
func MaskEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return email
	}
	at := strings.Index(email, "@")
	local, domain := email[:at], email[at+1:]
	if len(local) <= 1 {
		return local + "@" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
