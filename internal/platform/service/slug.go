package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/prajasetu/prajasetu/internal/platform/store"
)

// NormalizeSlug converts a free-text display name into its base slug:
// lowercase, non [a-z0-9 -] characters stripped, whitespace runs become
// single hyphens, repeated hyphens collapse, leading/trailing hyphens
// trimmed. "Ravi Kumar" becomes "ravi-kumar". A name made entirely of
// symbols normalizes to "" which is still a valid, if degenerate, slug.
func NormalizeSlug(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	// Whitespace runs to single hyphens.
	slug := strings.Join(strings.Fields(b.String()), "-")

	// Collapse repeated hyphens.
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return strings.Trim(slug, "-")
}

// AllocateSlug returns the first unused slug for the given display name,
// checking live profiles only: the base slug if free, otherwise base-1,
// base-2 and so on. Because existence is re-checked against current rows
// at allocation time, slugs freed by profile deletion are reusable.
//
// The check-then-create window is closed by the unique constraint on the
// profiles table; callers must catch store.ErrAlreadyExists on create
// and re-allocate.
func AllocateSlug(ctx context.Context, profiles store.LeaderProfiles, name string) (string, error) {
	base := NormalizeSlug(name)

	candidate := base
	for counter := 1; ; counter++ {
		exists, err := profiles.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
