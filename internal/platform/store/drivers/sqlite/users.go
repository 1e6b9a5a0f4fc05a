package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type usersRepo struct {
	q dbtx
}

const userColumns = `id, name, mobile, password_hash, role, state, district, constituency,
	is_active, can_post, used_invite_id, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u                        domain.User
		state, district, constit sql.NullString
		usedInviteID             sql.NullString
	)
	err := row.Scan(&u.ID, &u.Name, &u.Mobile, &u.PasswordHash, &u.Role,
		&state, &district, &constit, &u.IsActive, &u.CanPost,
		&usedInviteID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.State = mapNullString(state)
	u.District = mapNullString(district)
	u.Constituency = mapNullString(constit)
	u.UsedInviteID = mapNullString(usedInviteID)
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetByMobile(ctx context.Context, mobile string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE mobile = ?`, mobile)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	ts := now()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, name, mobile, password_hash, role, state, district,
			constituency, is_active, can_post, used_invite_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Mobile, u.PasswordHash, u.Role,
		mapStringNull(u.State), mapStringNull(u.District), mapStringNull(u.Constituency),
		u.IsActive, u.CanPost, mapStringNull(u.UsedInviteID), ts, ts,
	)
	return mapConstraint(err)
}

func (r *usersRepo) List(ctx context.Context, f store.UserFilter, p store.Page) ([]store.UserWithCounts, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if f.Role != "" {
		where += ` AND role = ?`
		args = append(args, f.Role)
	}
	if f.IsActive != nil {
		where += ` AND is_active = ?`
		args = append(args, *f.IsActive)
	}
	if f.Search != "" {
		where += ` AND (name LIKE ? COLLATE NOCASE OR mobile LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}

	var total int64
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM events e WHERE e.user_id = users.id),
			(SELECT COUNT(*) FROM media_bytes m WHERE m.user_id = users.id),
			(SELECT COUNT(*) FROM comments c WHERE c.user_id = users.id)
		FROM users%s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, userColumns, where)
	args = append(args, p.Size, p.Offset())

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []store.UserWithCounts
	for rows.Next() {
		var (
			u                        store.UserWithCounts
			state, district, constit sql.NullString
			usedInviteID             sql.NullString
		)
		err := rows.Scan(&u.ID, &u.Name, &u.Mobile, &u.PasswordHash, &u.Role,
			&state, &district, &constit, &u.IsActive, &u.CanPost,
			&usedInviteID, &u.CreatedAt, &u.UpdatedAt,
			&u.EventCount, &u.MediaByteCount, &u.CommentCount)
		if err != nil {
			return nil, 0, err
		}
		u.State = mapNullString(state)
		u.District = mapNullString(district)
		u.Constituency = mapNullString(constit)
		u.UsedInviteID = mapNullString(usedInviteID)
		out = append(out, u)
	}
	return out, total, rows.Err()
}

func (r *usersRepo) UpdateFlags(ctx context.Context, userID string, isActive, canPost *bool) error {
	set := `updated_at = ?`
	args := []any{now()}
	if isActive != nil {
		set += `, is_active = ?`
		args = append(args, *isActive)
	}
	if canPost != nil {
		set += `, can_post = ?`
		args = append(args, *canPost)
	}
	args = append(args, userID)

	res, err := r.q.ExecContext(ctx, `UPDATE users SET `+set+` WHERE id = ?`, args...)
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

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
