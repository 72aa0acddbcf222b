package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arash/credly-sync/internal/types"
)

func sampleGrouped() types.GroupedBadges {
	return types.GroupedBadges{
		{
			Issuer: "IBM",
			Badges: []types.Badge{
				{
					ID:           "11111111-2222-3333-4444-555555555555",
					IssuedAtDate: "2024-03-01",
					Template: &types.BadgeTemplate{
						Name:     "IBM Cloud Essentials",
						ImageURL: "https://images.credly.com/cloud.png",
					},
				},
				{
					ID: "66666666-7777-8888-9999-000000000000",
					Template: &types.BadgeTemplate{
						Name:     "IBM Data Science",
						ImageURL: "https://images.credly.com/ds.png",
					},
				},
			},
		},
		{
			Issuer: "Other",
			Badges: []types.Badge{
				{ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"},
			},
		},
	}
}

func TestBadgeHTML(t *testing.T) {
	html := BadgeHTML(sampleGrouped()[0].Badges[0])

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	anchor := doc.Find("a")
	require.Equal(t, 1, anchor.Length())
	href, _ := anchor.Attr("href")
	assert.Equal(t, "https://www.credly.com/badges/11111111-2222-3333-4444-555555555555/public_url", href)

	img := anchor.Find("img")
	require.Equal(t, 1, img.Length())
	src, _ := img.Attr("src")
	alt, _ := img.Attr("alt")
	height, _ := img.Attr("height")
	width, _ := img.Attr("width")
	assert.Equal(t, "https://images.credly.com/cloud.png", src)
	assert.Equal(t, "IBM Cloud Essentials", alt)
	assert.Equal(t, "90", height)
	assert.Equal(t, "90", width)
}

func TestRenderSection_Structure(t *testing.T) {
	section := RenderSection(sampleGrouped())
	lines := strings.Split(section, "\n")

	// Heading, blank, then per group: bold issuer, blank, anchors, blank.
	require.Len(t, lines, 10)
	assert.Equal(t, SectionHeading, lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "**IBM**", lines[2])
	assert.Empty(t, lines[3])
	assert.Contains(t, lines[4], "cloud.png")
	assert.Contains(t, lines[4], "ds.png")
	assert.Empty(t, lines[5])
	assert.Equal(t, "**Other**", lines[6])
	assert.Empty(t, lines[9])
}

func TestRenderSection_AnchorsSpaceJoined(t *testing.T) {
	section := RenderSection(sampleGrouped())

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(section))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Find("a").Length())
	assert.Equal(t, 3, doc.Find("img").Length())

	// Both IBM anchors share one line.
	assert.Contains(t, section, `/></a> <a href=`)
}

func TestRenderSection_Pure(t *testing.T) {
	grouped := sampleGrouped()
	assert.Equal(t, RenderSection(grouped), RenderSection(grouped))
}

func TestRenderSection_Empty(t *testing.T) {
	section := RenderSection(nil)
	assert.Equal(t, SectionHeading+"\n", section)
}
