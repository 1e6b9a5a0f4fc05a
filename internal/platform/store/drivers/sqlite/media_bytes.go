package sqlite

import (
	"context"
	"database/sql"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type mediaBytesRepo struct {
	q dbtx
}

const mediaByteSelect = `
	SELECT m.id, m.user_id, u.name, COALESCE(lp.slug, ''), m.video_url,
		m.video_type, m.message, m.language, m.view_count, m.created_at
	FROM media_bytes m
	JOIN users u ON u.id = m.user_id
	LEFT JOIN leader_profiles lp ON lp.user_id = m.user_id`

func scanMediaByte(row interface{ Scan(...any) error }) (domain.MediaByte, error) {
	var (
		mb      domain.MediaByte
		message sql.NullString
	)
	err := row.Scan(&mb.ID, &mb.UserID, &mb.AuthorName, &mb.LeaderSlug,
		&mb.VideoURL, &mb.VideoType, &message, &mb.Language,
		&mb.ViewCount, &mb.CreatedAt)
	if err != nil {
		return domain.MediaByte{}, err
	}
	mb.Message = mapNullString(message)
	return mb, nil
}

func (r *mediaBytesRepo) Create(ctx context.Context, mb domain.MediaByte) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO media_bytes (id, user_id, video_url, video_type, message,
			language, view_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		mb.ID, mb.UserID, mb.VideoURL, mb.VideoType,
		mapStringNull(mb.Message), mb.Language, now(),
	)
	return mapConstraint(err)
}

func (r *mediaBytesRepo) GetByID(ctx context.Context, id string) (domain.MediaByte, error) {
	row := r.q.QueryRowContext(ctx, mediaByteSelect+` WHERE m.id = ?`, id)
	mb, err := scanMediaByte(row)
	if err != nil {
		return domain.MediaByte{}, mapNotFound(err)
	}
	return mb, nil
}

func (r *mediaBytesRepo) List(ctx context.Context, userID string, p store.Page) ([]domain.MediaByte, int64, error) {
	where := ``
	args := []any{}
	if userID != "" {
		where = ` WHERE m.user_id = ?`
		args = append(args, userID)
	}

	var total int64
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM media_bytes m`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, p.Size, p.Offset())
	rows, err := r.q.QueryContext(ctx,
		mediaByteSelect+where+` ORDER BY m.created_at DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.MediaByte
	for rows.Next() {
		mb, err := scanMediaByte(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, mb)
	}
	return out, total, rows.Err()
}

func (r *mediaBytesRepo) IncrementViews(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE media_bytes SET view_count = view_count + 1 WHERE id = ?`, id)
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

func (r *mediaBytesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM media_bytes WHERE id = ?`, id)
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
