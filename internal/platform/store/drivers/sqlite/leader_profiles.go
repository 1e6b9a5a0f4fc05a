package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type leaderProfilesRepo struct {
	q dbtx
}

const leaderProfileColumns = `id, user_id, slug, designation, constituency, bio,
	photo_url, social_links, verified, created_at, updated_at`

func scanLeaderProfile(row interface{ Scan(...any) error }) (domain.LeaderProfile, error) {
	var (
		p                   domain.LeaderProfile
		constit, bio, photo sql.NullString
		socialLinks         sql.NullString
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Slug, &p.Designation, &constit, &bio,
		&photo, &socialLinks, &p.Verified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.LeaderProfile{}, err
	}
	p.Constituency = mapNullString(constit)
	p.Bio = mapNullString(bio)
	p.PhotoURL = mapNullString(photo)
	if socialLinks.Valid && socialLinks.String != "" {
		if err := json.Unmarshal([]byte(socialLinks.String), &p.SocialLinks); err != nil {
			return domain.LeaderProfile{}, err
		}
	}
	return p, nil
}

func (r *leaderProfilesRepo) Create(ctx context.Context, p domain.LeaderProfile) error {
	var socialLinks sql.NullString
	if len(p.SocialLinks) > 0 {
		b, err := json.Marshal(p.SocialLinks)
		if err != nil {
			return err
		}
		socialLinks = sql.NullString{String: string(b), Valid: true}
	}

	ts := now()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO leader_profiles (id, user_id, slug, designation, constituency,
			bio, photo_url, social_links, verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Slug, p.Designation, mapStringNull(p.Constituency),
		mapStringNull(p.Bio), mapStringNull(p.PhotoURL), socialLinks,
		p.Verified, ts, ts,
	)
	return mapConstraint(err)
}

func (r *leaderProfilesRepo) GetBySlug(ctx context.Context, slug string) (domain.LeaderProfile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+leaderProfileColumns+` FROM leader_profiles WHERE slug = ?`, slug)
	p, err := scanLeaderProfile(row)
	if err != nil {
		return domain.LeaderProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *leaderProfilesRepo) GetByUserID(ctx context.Context, userID string) (domain.LeaderProfile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+leaderProfileColumns+` FROM leader_profiles WHERE user_id = ?`, userID)
	p, err := scanLeaderProfile(row)
	if err != nil {
		return domain.LeaderProfile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *leaderProfilesRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leader_profiles WHERE slug = ?`, slug).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *leaderProfilesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM leader_profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *leaderProfilesRepo) List(ctx context.Context, p store.Page) ([]domain.LeaderListing, int64, error) {
	var total int64
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leader_profiles`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT lp.id, lp.user_id, lp.slug, lp.designation, lp.constituency, lp.bio,
			lp.photo_url, lp.social_links, lp.verified, lp.created_at, lp.updated_at,
			u.name, COALESCE(u.state, '')
		FROM leader_profiles lp
		JOIN users u ON u.id = lp.user_id
		WHERE u.is_active = 1
		ORDER BY lp.verified DESC, u.name ASC
		LIMIT ? OFFSET ?`, p.Size, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.LeaderListing
	for rows.Next() {
		var (
			l                   domain.LeaderListing
			constit, bio, photo sql.NullString
			socialLinks         sql.NullString
		)
		err := rows.Scan(&l.Profile.ID, &l.Profile.UserID, &l.Profile.Slug,
			&l.Profile.Designation, &constit, &bio, &photo, &socialLinks,
			&l.Profile.Verified, &l.Profile.CreatedAt, &l.Profile.UpdatedAt,
			&l.Name, &l.State)
		if err != nil {
			return nil, 0, err
		}
		l.Profile.Constituency = mapNullString(constit)
		l.Profile.Bio = mapNullString(bio)
		l.Profile.PhotoURL = mapNullString(photo)
		if socialLinks.Valid && socialLinks.String != "" {
			if err := json.Unmarshal([]byte(socialLinks.String), &l.Profile.SocialLinks); err != nil {
				return nil, 0, err
			}
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}
