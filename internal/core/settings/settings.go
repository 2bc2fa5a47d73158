// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package settings manages the process-wide configuration singletons edited
from the back-office.

Two records exist: the moderation settings that drive the submission
cooldown and public display toggles, and the layout settings consumed by the
directory frontend. Both are lazily created with defaults on first read and
mutated only by administrator action.

# Architecture

No ambient global state: callers fetch the current settings through the
[Service] per operation and pass them down as values.
*/
package settings

import "time"

// # Cooldown

// CooldownUnit is the unit applied to the resubmission cooldown value.
type CooldownUnit string

const (
	UnitHours  CooldownUnit = "hours"
	UnitDays   CooldownUnit = "days"
	UnitMonths CooldownUnit = "months"
)

// Duration converts a cooldown value in this unit to a [time.Duration].
//
// Months are a fixed 30-day approximation, not calendar-aware.
func (unit CooldownUnit) Duration(value int) time.Duration {
	switch unit {
	case UnitHours:
		return time.Duration(value) * time.Hour
	case UnitDays:
		return time.Duration(value) * 24 * time.Hour
	case UnitMonths:
		return time.Duration(value) * 30 * 24 * time.Hour
	default:
		return 0
	}
}

// # Featured Display Modes

// FeaturedDisplay controls how featured entries are presented on the homepage.
type FeaturedDisplay string

const (
	FeaturedCarousel FeaturedDisplay = "carousel"
	FeaturedGrid     FeaturedDisplay = "grid"
	FeaturedHidden   FeaturedDisplay = "hidden"
)

// # Singleton Records

// Moderation is the singleton moderation configuration record.
type Moderation struct {
	CooldownEnabled       bool            `json:"cooldown_enabled"`
	CooldownValue         int             `json:"cooldown_value"`
	CooldownUnit          CooldownUnit    `json:"cooldown_unit"`
	GroupsPerPage         int             `json:"groups_per_page"`
	FeaturedGroupsDisplay FeaturedDisplay `json:"featured_groups_display"`
	ShowNewsletter        bool            `json:"show_newsletter"`
	ShowDynamicSeoContent bool            `json:"show_dynamic_seo_content"`
	ShowRatings           bool            `json:"show_ratings"`
	ShowClicks            bool            `json:"show_clicks"`
}

// DefaultModeration returns the values written on first read.
func DefaultModeration() Moderation {
	return Moderation{
		CooldownEnabled:       true,
		CooldownValue:         24,
		CooldownUnit:          UnitHours,
		GroupsPerPage:         20,
		FeaturedGroupsDisplay: FeaturedCarousel,
		ShowNewsletter:        true,
		ShowDynamicSeoContent: true,
		ShowRatings:           true,
		ShowClicks:            true,
	}
}

// NavLink is a single navigation item in the frontend header.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Layout is the singleton layout configuration record.
type Layout struct {
	LogoURL            string    `json:"logo_url"`
	NavLinks           []NavLink `json:"nav_links"`
	FooterContent      string    `json:"footer_content"`
	BackgroundSettings string    `json:"background_settings"`
	HomepageSeoContent string    `json:"homepage_seo_content"`
	SeoTitle           string    `json:"seo_title"`
	SeoDescription     string    `json:"seo_description"`
}

// DefaultLayout returns the values written on first read.
func DefaultLayout() Layout {
	return Layout{
		NavLinks: []NavLink{
			{Label: "Home", Href: "/"},
			{Label: "Submit", Href: "/submit"},
		},
		SeoTitle: "Groupdex — community invite directory",
	}
}

// # Record Identifiers

const (
	// IDModeration is the fixed row id of the moderation singleton.
	IDModeration = "moderation"

	// IDLayout is the fixed row id of the layout singleton.
	IDLayout = "layout"
)

// # Field Identifiers

const (
	FieldCooldownValue = "cooldown_value"
	FieldCooldownUnit  = "cooldown_unit"
	FieldGroupsPerPage = "groups_per_page"
	FieldFeatured      = "featured_groups_display"
)
