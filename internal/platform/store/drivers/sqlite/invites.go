package sqlite

import (
	"context"
	"database/sql"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
)

type invitesRepo struct {
	q dbtx
}

const inviteColumns = `id, code, role, created_by, used, used_by, expires_at, created_at, updated_at`

func scanInvite(row interface{ Scan(...any) error }) (domain.Invite, error) {
	var (
		inv       domain.Invite
		usedBy    sql.NullString
		expiresAt sql.NullTime
	)
	err := row.Scan(&inv.ID, &inv.Code, &inv.Role, &inv.CreatedBy,
		&inv.Used, &usedBy, &expiresAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, err
	}
	inv.UsedBy = mapNullString(usedBy)
	inv.ExpiresAt = mapNullTimePtr(expiresAt)
	return inv, nil
}

func (r *invitesRepo) Create(ctx context.Context, inv domain.Invite) error {
	ts := now()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invite_codes (id, code, role, created_by, used, used_by,
			expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, NULL, ?, ?, ?)`,
		inv.ID, inv.Code, inv.Role, inv.CreatedBy,
		mapOptionalTime(inv.ExpiresAt), ts, ts,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetByCode(ctx context.Context, code string) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invite_codes WHERE code = ?`, code)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) GetByID(ctx context.Context, id string) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invite_codes WHERE id = ?`, id)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

// MarkUsedIfUnused is the compare-and-set that makes invite consumption
// race-free: the WHERE used = 0 guard lets exactly one concurrent caller
// win, and everyone else observes ErrNoRowsAffected.
func (r *invitesRepo) MarkUsedIfUnused(ctx context.Context, inviteID, usedByUserID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invite_codes
		SET used = 1, used_by = ?, updated_at = ?
		WHERE id = ? AND used = 0`,
		usedByUserID, now(), inviteID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNoRowsAffected
	}
	return nil
}

func (r *invitesRepo) List(ctx context.Context, used *bool, p store.Page) ([]store.InviteListing, int64, error) {
	where := ``
	args := []any{}
	if used != nil {
		where = ` WHERE i.used = ?`
		args = append(args, *used)
	}

	var total int64
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invite_codes i`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT i.id, i.code, i.role, i.created_by, i.used, i.used_by,
			i.expires_at, i.created_at, i.updated_at,
			c.name, COALESCE(u.name, '')
		FROM invite_codes i
		JOIN users c ON c.id = i.created_by
		LEFT JOIN users u ON u.id = i.used_by` + where + `
		ORDER BY i.created_at DESC
		LIMIT ? OFFSET ?`
	args = append(args, p.Size, p.Offset())

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []store.InviteListing
	for rows.Next() {
		var (
			l         store.InviteListing
			usedBy    sql.NullString
			expiresAt sql.NullTime
		)
		err := rows.Scan(&l.ID, &l.Code, &l.Role, &l.CreatedBy, &l.Used, &usedBy,
			&expiresAt, &l.CreatedAt, &l.UpdatedAt, &l.CreatedByName, &l.UsedByName)
		if err != nil {
			return nil, 0, err
		}
		l.UsedBy = mapNullString(usedBy)
		l.ExpiresAt = mapNullTimePtr(expiresAt)
		out = append(out, l)
	}
	return out, total, rows.Err()
}

// Delete refuses to remove consumed invites; the used = 0 guard is the
// ledger's own enforcement, independent of the service check.
func (r *invitesRepo) Delete(ctx context.Context, inviteID string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM invite_codes WHERE id = ? AND used = 0`, inviteID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNoRowsAffected
	}
	return nil
}

func (r *invitesRepo) DeleteExpiredUnused(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM invite_codes
		WHERE used = 0 AND expires_at IS NOT NULL AND expires_at < ?`, now())
	return err
}
