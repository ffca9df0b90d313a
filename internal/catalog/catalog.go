// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package catalog holds the static reference mapping of category names to
// well-known services, used for auto-categorization suggestions when adding
// entries. It is pure lookup data; nothing here touches durable state.
package catalog

import "strings"

// Category is one catalog group: a display name and its known services.
type Category struct {
	Name     string
	Services []string
}

// categories is ordered; CategoryFor returns the first category that lists a
// service, so earlier categories win for names appearing more than once.
var categories = []Category{
	{"Social Media", []string{
		"Instagram", "Twitter", "Facebook", "LinkedIn", "TikTok",
		"Snapchat", "Pinterest", "Reddit", "Discord", "Telegram",
	}},
	{"Streaming", []string{
		"Netflix", "Spotify", "YouTube", "Amazon Prime", "Disney+",
		"Apple Music", "HBO Max", "Hulu", "Twitch", "SoundCloud",
	}},
	{"Email", []string{
		"Gmail", "Outlook", "Yahoo Mail", "ProtonMail", "iCloud",
		"Zoho Mail", "FastMail", "Tutanota",
	}},
	{"Development", []string{
		"GitHub", "GitLab", "Bitbucket", "Stack Overflow", "Docker Hub",
		"npm", "PyPI", "Heroku", "Vercel", "Netlify", "AWS", "Azure",
	}},
	{"Cloud Storage", []string{
		"Google Drive", "Dropbox", "OneDrive", "iCloud", "Box",
		"MEGA", "pCloud", "Backblaze",
	}},
	{"Finance", []string{
		"PayPal", "Stripe", "Venmo", "Cash App", "Robinhood",
		"Coinbase", "Bank of America", "Chase", "Wells Fargo",
	}},
	{"Shopping", []string{
		"Amazon", "eBay", "Walmart", "Target", "Best Buy",
		"Etsy", "Shopify", "AliExpress", "Flipkart",
	}},
	{"Productivity", []string{
		"Slack", "Microsoft Teams", "Zoom", "Notion", "Trello",
		"Jira", "Asana", "Monday.com", "Figma", "Canva",
	}},
	{"Gaming", []string{
		"Steam", "Epic Games", "PlayStation", "Xbox", "Nintendo",
		"Riot Games", "Blizzard", "EA", "Ubisoft",
	}},
	{"Education", []string{
		"Coursera", "Udemy", "edX", "Khan Academy", "Duolingo",
		"LinkedIn Learning", "Skillshare", "Codecademy",
	}},
}

// Categories returns the catalog category names in display order.
func Categories() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

// Services returns the known services of a category.
func Services(category string) ([]string, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, category) {
			out := make([]string, len(c.Services))
			copy(out, c.Services)
			return out, true
		}
	}
	return nil, false
}

// CategoryFor suggests the category of a known service name, matched
// case-insensitively. The first matching category wins.
func CategoryFor(service string) (string, bool) {
	for _, c := range categories {
		for _, s := range c.Services {
			if strings.EqualFold(s, service) {
				return c.Name, true
			}
		}
	}
	return "", false
}

// All returns the full catalog in display order.
func All() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		services := make([]string, len(c.Services))
		copy(services, c.Services)
		out[i] = Category{Name: c.Name, Services: services}
	}
	return out
}
