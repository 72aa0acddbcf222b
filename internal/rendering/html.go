// Package rendering produces the HTML badge section injected into the README.
// Rendering is pure string assembly: same grouped input, same output, no I/O.
package rendering

import (
	"fmt"
	"strings"

	"github.com/arash/credly-sync/internal/types"
)

// SectionHeading is the fixed first line of the rendered badge section.
const SectionHeading = "### Certificates & Badges"

// RenderSection converts grouped badges into the markdown/HTML fragment that
// replaces the marker-delimited README region. For each group in order it
// emits a bold issuer line, a blank line, one line of space-joined badge
// anchors, and a trailing blank line.
func RenderSection(grouped types.GroupedBadges) string {
	lines := []string{SectionHeading, ""}

	for _, group := range grouped {
		anchors := make([]string, len(group.Badges))
		for i, badge := range group.Badges {
			anchors[i] = BadgeHTML(badge)
		}
		lines = append(lines, fmt.Sprintf("**%s**", group.Issuer), "", strings.Join(anchors, " "), "")
	}

	return strings.Join(lines, "\n")
}

// BadgeHTML renders one badge as an anchor to its public Credly page wrapping
// a 90x90 image. Name and image URL come from the badge template as-is; the
// upstream data is accepted as pre-sanitized.
func BadgeHTML(badge types.Badge) string {
	return fmt.Sprintf(
		`<a href="%s"><img height="90" width="90" src="%s" alt="%s"/></a>`,
		badge.PublicURL(), badge.ImageURL(), badge.Name(),
	)
}
