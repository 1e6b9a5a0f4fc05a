package sqlite

import (
	"context"
	"database/sql"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type commentsRepo struct {
	q dbtx
}

func (r *commentsRepo) Create(ctx context.Context, c domain.Comment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO comments (id, user_id, event_id, media_byte_id, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, mapStringNull(c.EventID), mapStringNull(c.MediaByteID),
		c.Content, now(),
	)
	return mapConstraint(err)
}

func (r *commentsRepo) List(ctx context.Context, f store.CommentFilter, p store.Page) ([]domain.Comment, int64, error) {
	where := ` WHERE c.event_id = ?`
	parent := f.EventID
	if f.MediaByteID != "" {
		where = ` WHERE c.media_byte_id = ?`
		parent = f.MediaByteID
	}

	var total int64
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments c`+where, parent).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT c.id, c.user_id, u.name, c.event_id, c.media_byte_id, c.content, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id`+where+`
		ORDER BY c.created_at DESC
		LIMIT ? OFFSET ?`, parent, p.Size, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var (
			c                    domain.Comment
			eventID, mediaByteID sql.NullString
		)
		err := rows.Scan(&c.ID, &c.UserID, &c.AuthorName, &eventID, &mediaByteID,
			&c.Content, &c.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		c.EventID = mapNullString(eventID)
		c.MediaByteID = mapNullString(mediaByteID)
		out = append(out, c)
	}
	return out, total, rows.Err()
}
