package service

import "strings"

// missingFields returns the names of required fields that are empty, in a
// stable order.
func missingFields(fields map[string]string) []string {
	order := []string{"title", "excerpt", "category", "content", "slug", "src", "publicId"}
	var missing []string
	for _, name := range order {
		value, required := fields[name]
		if required && strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
