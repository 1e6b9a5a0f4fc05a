package sqlite

import (
	"context"
	"database/sql"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type eventsRepo struct {
	q dbtx
}

func (r *eventsRepo) Create(ctx context.Context, e domain.Event) error {
	ts := now()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO events (id, user_id, title, category, description, state,
			district, constituency, language, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Title, e.Category, e.Description, e.State,
		e.District, e.Constituency, e.Language, e.Status, ts, ts,
	)
	if err != nil {
		return mapConstraint(err)
	}

	for _, img := range e.Images {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO event_images (id, event_id, url, position)
			VALUES (?, ?, ?, ?)`,
			img.ID, e.ID, img.URL, img.Position,
		)
		if err != nil {
			return err
		}
	}

	for _, link := range e.SocialLinks {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO social_links (id, event_id, platform, url, thumbnail_url)
			VALUES (?, ?, ?, ?, ?)`,
			link.ID, e.ID, link.Platform, link.URL, mapStringNull(link.ThumbnailURL),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *eventsRepo) GetByID(ctx context.Context, id string) (domain.Event, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT e.id, e.user_id, u.name, e.title, e.category, e.description,
			e.state, e.district, e.constituency, e.language, e.status,
			(SELECT COUNT(*) FROM comments c WHERE c.event_id = e.id),
			e.created_at, e.updated_at
		FROM events e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = ?`, id)

	var e domain.Event
	err := row.Scan(&e.ID, &e.UserID, &e.AuthorName, &e.Title, &e.Category,
		&e.Description, &e.State, &e.District, &e.Constituency, &e.Language,
		&e.Status, &e.CommentCount, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}

	if err := r.attachRelations(ctx, map[string]*domain.Event{e.ID: &e}); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (r *eventsRepo) List(ctx context.Context, f store.EventFilter, p store.Page) ([]domain.Event, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if f.Status != "" {
		where += ` AND e.status = ?`
		args = append(args, f.Status)
	}
	if f.State != "" {
		where += ` AND e.state = ?`
		args = append(args, f.State)
	}
	if f.District != "" {
		where += ` AND e.district = ?`
		args = append(args, f.District)
	}
	if f.Constituency != "" {
		where += ` AND e.constituency = ?`
		args = append(args, f.Constituency)
	}
	if f.Category != "" {
		where += ` AND e.category = ?`
		args = append(args, f.Category)
	}

	var total int64
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events e`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT e.id, e.user_id, u.name, e.title, e.category, e.description,
			e.state, e.district, e.constituency, e.language, e.status,
			(SELECT COUNT(*) FROM comments c WHERE c.event_id = e.id),
			e.created_at, e.updated_at
		FROM events e
		JOIN users u ON u.id = e.user_id` + where + `
		ORDER BY e.created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, p.Size, p.Offset())

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Event
	byID := make(map[string]*domain.Event)
	for rows.Next() {
		var e domain.Event
		err := rows.Scan(&e.ID, &e.UserID, &e.AuthorName, &e.Title, &e.Category,
			&e.Description, &e.State, &e.District, &e.Constituency, &e.Language,
			&e.Status, &e.CommentCount, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range out {
		byID[out[i].ID] = &out[i]
	}
	if err := r.attachRelations(ctx, byID); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// attachRelations loads images and social links for the given events in
// two queries instead of one per event.
func (r *eventsRepo) attachRelations(ctx context.Context, events map[string]*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	placeholders := ""
	ids := make([]any, 0, len(events))
	for id := range events {
		if placeholders != "" {
			placeholders += ","
		}
		placeholders += "?"
		ids = append(ids, id)
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT id, event_id, url, position FROM event_images
		WHERE event_id IN (`+placeholders+`)
		ORDER BY position ASC`, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var img domain.EventImage
		if err := rows.Scan(&img.ID, &img.EventID, &img.URL, &img.Position); err != nil {
			return err
		}
		e := events[img.EventID]
		e.Images = append(e.Images, img)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	linkRows, err := r.q.QueryContext(ctx, `
		SELECT id, event_id, platform, url, thumbnail_url FROM social_links
		WHERE event_id IN (`+placeholders+`)`, ids...)
	if err != nil {
		return err
	}
	defer linkRows.Close()
	for linkRows.Next() {
		var (
			link  domain.SocialLink
			thumb sql.NullString
		)
		if err := linkRows.Scan(&link.ID, &link.EventID, &link.Platform, &link.URL, &thumb); err != nil {
			return err
		}
		link.ThumbnailURL = mapNullString(thumb)
		e := events[link.EventID]
		e.SocialLinks = append(e.SocialLinks, link)
	}
	return linkRows.Err()
}

func (r *eventsRepo) UpdateStatus(ctx context.Context, id string, status domain.ContentStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE events SET status = ?, updated_at = ? WHERE id = ?`,
		status, now(), id)
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

func (r *eventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
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
