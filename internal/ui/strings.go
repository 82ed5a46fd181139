package ui

import "strings"

// truncateMiddle shortens a string by removing characters from the middle,
// keeping the start and end. Path extensions are preserved.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	ellipsis := []rune("…")
	if limit <= 3 {
		return string(runes[:limit])
	}

	if lastSlash := strings.LastIndex(value, "/"); lastSlash >= 0 {
		if lastDot := strings.LastIndex(value, "."); lastDot > lastSlash {
			ext := []rune(value[lastDot:])
			base := []rune(value[:lastDot])
			baseLimit := limit - len(ext) - len(ellipsis)
			if len(ext) < 10 && len(ext) < limit/2 && baseLimit > 0 {
				prefix := baseLimit / 2
				suffix := baseLimit - prefix
				return string(base[:prefix]) + string(ellipsis) + string(base[len(base)-suffix:]) + string(ext)
			}
		}
	}

	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// titleCase converts an underscore-separated string to title case.
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

// orDash substitutes a dash for blank values in table cells.
func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
