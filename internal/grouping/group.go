// Package grouping partitions badges by issuer and determines display order.
package grouping

import (
	"sort"

	"github.com/arash/credly-sync/internal/types"
)

// Group partitions badges by issuer name and orders the result for display:
//
//  1. Badges are accumulated into groups in input order, keyed by
//     Badge.IssuerName (insertion-ordered grouping).
//  2. Each group is stable-sorted by issued_at_date descending. A missing
//     date compares as the empty string, so undated badges sort last.
//  3. Groups named in priorityOrder come first, in that order; a priority
//     issuer with no badges this run is simply skipped. Remaining groups
//     follow alphabetically by issuer name.
//
// Every input badge lands in exactly one group.
func Group(badges []types.Badge, priorityOrder []string) types.GroupedBadges {
	var groups types.GroupedBadges
	index := make(map[string]int)

	for _, badge := range badges {
		issuer := badge.IssuerName()
		i, ok := index[issuer]
		if !ok {
			i = len(groups)
			index[issuer] = i
			groups = append(groups, types.IssuerGroup{Issuer: issuer})
		}
		groups[i].Badges = append(groups[i].Badges, badge)
	}

	for i := range groups {
		sortNewestFirst(groups[i].Badges)
	}

	return reorder(groups, index, priorityOrder)
}

// sortNewestFirst stable-sorts badges by issuance date descending.
func sortNewestFirst(badges []types.Badge) {
	sort.SliceStable(badges, func(i, j int) bool {
		return badges[i].IssuedAtDate > badges[j].IssuedAtDate
	})
}

// reorder moves priority issuers to the front and sorts the rest alphabetically.
func reorder(groups types.GroupedBadges, index map[string]int, priorityOrder []string) types.GroupedBadges {
	ordered := make(types.GroupedBadges, 0, len(groups))
	taken := make(map[string]bool, len(priorityOrder))

	for _, issuer := range priorityOrder {
		if i, ok := index[issuer]; ok {
			ordered = append(ordered, groups[i])
			taken[issuer] = true
		}
	}

	var remainder types.GroupedBadges
	for _, group := range groups {
		if !taken[group.Issuer] {
			remainder = append(remainder, group)
		}
	}
	sort.Slice(remainder, func(i, j int) bool {
		return remainder[i].Issuer < remainder[j].Issuer
	})

	return append(ordered, remainder...)
}
