package docname

import (
	"slices"
	"strings"
)

// Categories is the closed, immutable list of labels a file may be filed under.
type Categories struct {
	labels []string
}

// NewCategories returns Categories holding labels in order.
// Blank labels and duplicates are dropped.
func NewCategories(labels ...string) Categories {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" || slices.Contains(out, l) {
			continue
		}
		out = append(out, l)
	}
	return Categories{labels: out}
}

// ParseCategories parses a comma-separated list such as "Finance,Personal".
func ParseCategories(s string) Categories {
	return NewCategories(strings.Split(s, ",")...)
}

// Contains reports whether label is exactly one of the categories.
func (c Categories) Contains(label string) bool {
	return slices.Contains(c.labels, label)
}

// Labels returns a copy of the labels.
func (c Categories) Labels() []string {
	return slices.Clone(c.labels)
}

// Len returns the number of categories.
func (c Categories) Len() int {
	return len(c.labels)
}

// String returns the labels joined by ", ".
func (c Categories) String() string {
	return strings.Join(c.labels, ", ")
}
