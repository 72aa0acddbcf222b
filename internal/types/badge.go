// Package types provides type definitions for structured data used throughout the credly-sync system.
package types

import "fmt"

// OtherIssuer is the sentinel group name for badges whose issuer cannot be
// determined from the record.
const OtherIssuer = "Other"

// publicBadgeURL is the public page for an earned badge, keyed by badge ID.
const publicBadgeURL = "https://www.credly.com/badges/%s/public_url"

// BadgesResponse is the top-level envelope returned by the Credly badges endpoint.
// Data is a pointer slice so that a response missing the "data" key, or
// carrying "data": null, is distinguishable from an empty badge list.
type BadgesResponse struct {
	Data *[]Badge `json:"data"`
}

// Badge represents one earned badge record. Nested descriptors use pointer
// fields so that keys absent from the JSON payload are observable as nil.
type Badge struct {
	ID           string         `json:"id"`
	IssuedAtDate string         `json:"issued_at_date,omitempty"`
	Template     *BadgeTemplate `json:"badge_template,omitempty"`
}

// BadgeTemplate describes the badge design shared by all earners of a badge.
type BadgeTemplate struct {
	Name     string            `json:"name"`
	ImageURL string            `json:"image_url"`
	Issuer   *IssuerDescriptor `json:"issuer,omitempty"`
}

// IssuerDescriptor wraps the list of entities associated with a badge's issuer.
type IssuerDescriptor struct {
	Entities []IssuerEntity `json:"entities"`
}

// IssuerEntity is one entry in an issuer's entity list.
type IssuerEntity struct {
	Entity *Entity `json:"entity,omitempty"`
}

// Entity is a named organization referenced by an issuer descriptor.
type Entity struct {
	Name string `json:"name"`
}

// IssuerName resolves badge_template.issuer.entities[0].entity.name.
// Absence of any step in that chain, an empty entity list, or an empty name
// yields OtherIssuer. Missing issuer data is normal, never an error.
func (b Badge) IssuerName() string {
	if b.Template == nil || b.Template.Issuer == nil {
		return OtherIssuer
	}
	entities := b.Template.Issuer.Entities
	if len(entities) == 0 || entities[0].Entity == nil || entities[0].Entity.Name == "" {
		return OtherIssuer
	}
	return entities[0].Entity.Name
}

// PublicURL returns the public Credly page for this badge.
func (b Badge) PublicURL() string {
	return fmt.Sprintf(publicBadgeURL, b.ID)
}

// Name returns the template display name, or "" when the template is absent.
func (b Badge) Name() string {
	if b.Template == nil {
		return ""
	}
	return b.Template.Name
}

// ImageURL returns the template image URL, or "" when the template is absent.
func (b Badge) ImageURL() string {
	if b.Template == nil {
		return ""
	}
	return b.Template.ImageURL
}
