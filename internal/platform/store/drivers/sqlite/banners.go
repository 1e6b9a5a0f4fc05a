package sqlite

import (
	"context"
	"database/sql"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type bannersRepo struct {
	q dbtx
}

const bannerColumns = `id, image_url, title, link, position, is_active, created_at, updated_at`

func (r *bannersRepo) Create(ctx context.Context, b domain.Banner) error {
	ts := now()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO banner_images (`+bannerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.ImageURL, mapStringNull(b.Title), mapStringNull(b.Link),
		b.Position, b.IsActive, ts, ts,
	)
	return mapConstraint(err)
}

func (r *bannersRepo) ListActive(ctx context.Context) ([]domain.Banner, error) {
	return r.list(ctx, `
		SELECT `+bannerColumns+` FROM banner_images
		WHERE is_active = 1
		ORDER BY position ASC, created_at ASC`)
}

func (r *bannersRepo) ListAll(ctx context.Context) ([]domain.Banner, error) {
	return r.list(ctx, `
		SELECT `+bannerColumns+` FROM banner_images
		ORDER BY position ASC, created_at ASC`)
}

func (r *bannersRepo) list(ctx context.Context, query string) ([]domain.Banner, error) {
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Banner
	for rows.Next() {
		var (
			b           domain.Banner
			title, link sql.NullString
		)
		err := rows.Scan(&b.ID, &b.ImageURL, &title, &link,
			&b.Position, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		b.Title = mapNullString(title)
		b.Link = mapNullString(link)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bannersRepo) Update(ctx context.Context, id string, upd store.BannerUpdate) error {
	set := `updated_at = ?`
	args := []any{now()}
	if upd.Title != nil {
		set += `, title = ?`
		args = append(args, mapStringNull(*upd.Title))
	}
	if upd.Link != nil {
		set += `, link = ?`
		args = append(args, mapStringNull(*upd.Link))
	}
	if upd.Position != nil {
		set += `, position = ?`
		args = append(args, *upd.Position)
	}
	if upd.IsActive != nil {
		set += `, is_active = ?`
		args = append(args, *upd.IsActive)
	}
	args = append(args, id)

	res, err := r.q.ExecContext(ctx, `UPDATE banner_images SET `+set+` WHERE id = ?`, args...)
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

func (r *bannersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM banner_images WHERE id = ?`, id)
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
