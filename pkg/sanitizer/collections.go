package sanitizer

import "strings"

// SplitList splits s on commas, semicolons or whitespace.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// FilterEmpty removes whitespace-only entries.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

// Deduplicate preserves first occurrence order.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool)
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}

func TrimStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = strings.TrimSpace(item)
	}
	return result
}

func ToLowerStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = strings.ToLower(item)
	}
	return result
}

// CleanStringSlice trims, drops empties and de-duplicates.
func CleanStringSlice(slice []string) []string {
	return Apply(slice,
		TrimStringSlice,
		FilterEmpty,
		Deduplicate[string],
	)
}

// Tags turns a free-form tag field ("web, db  prod") into a clean lowercase list.
func Tags(s string) []string {
	return Apply(SplitList(s),
		ToLowerStringSlice,
		CleanStringSlice,
	)
}
