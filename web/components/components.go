// Package components holds the markup shared by every page.
package components

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Class merges tailwind class lists. Later classes win over conflicting earlier ones.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}

// When returns class if cond holds.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Arbitrary builds a tailwind arbitrary value class such as bg-[#4F46E5].
func Arbitrary(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + "-[" + value + "]"
}
