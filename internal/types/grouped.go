package types

// IssuerGroup holds the badges attributed to a single issuer, newest first.
type IssuerGroup struct {
	Issuer string
	Badges []Badge
}

// GroupedBadges is an ordered collection of issuer groups. Order is
// significant: it is the display order of the rendered section. A slice of
// pairs is used instead of a map so iteration order is explicit.
type GroupedBadges []IssuerGroup

// Issuers returns the group names in display order.
func (g GroupedBadges) Issuers() []string {
	names := make([]string, len(g))
	for i, group := range g {
		names[i] = group.Issuer
	}
	return names
}

// TotalBadges returns the number of badges across all groups.
func (g GroupedBadges) TotalBadges() int {
	total := 0
	for _, group := range g {
		total += len(group.Badges)
	}
	return total
}
