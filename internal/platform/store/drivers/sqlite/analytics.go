package sqlite

import (
	"context"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
)

type analyticsRepo struct {
	q dbtx
}

func (r *analyticsRepo) ApprovedEventCount(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM events WHERE status = 'APPROVED'`
	args := []any{}
	if !since.IsZero() {
		query += ` AND created_at >= ?`
		args = append(args, since)
	}
	var count int64
	err := r.q.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *analyticsRepo) groupCounts(ctx context.Context, query string, args ...any) ([]domain.GroupCount, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GroupCount
	for rows.Next() {
		var gc domain.GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, err
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}

func (r *analyticsRepo) EventsByState(ctx context.Context) ([]domain.GroupCount, error) {
	return r.groupCounts(ctx, `
		SELECT state, COUNT(*) FROM events
		WHERE status = 'APPROVED'
		GROUP BY state ORDER BY COUNT(*) DESC`)
}

func (r *analyticsRepo) EventsByDistrict(ctx context.Context, limit int) ([]domain.GroupCount, error) {
	return r.groupCounts(ctx, `
		SELECT district, COUNT(*) FROM events
		WHERE status = 'APPROVED'
		GROUP BY district ORDER BY COUNT(*) DESC
		LIMIT ?`, limit)
}

func (r *analyticsRepo) EventsByCategory(ctx context.Context) ([]domain.GroupCount, error) {
	return r.groupCounts(ctx, `
		SELECT category, COUNT(*) FROM events
		WHERE status = 'APPROVED'
		GROUP BY category ORDER BY COUNT(*) DESC`)
}

func (r *analyticsRepo) TopConstituencies(ctx context.Context, limit int) ([]domain.GroupCount, error) {
	return r.groupCounts(ctx, `
		SELECT constituency, COUNT(*) FROM events
		WHERE status = 'APPROVED' AND constituency != ''
		GROUP BY constituency ORDER BY COUNT(*) DESC
		LIMIT ?`, limit)
}

func (r *analyticsRepo) TopCadres(ctx context.Context, limit int) ([]domain.CadreActivity, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT u.id, u.name, COALESCE(u.district, ''), COALESCE(u.constituency, ''),
			COUNT(e.id)
		FROM users u
		JOIN events e ON e.user_id = u.id AND e.status = 'APPROVED'
		WHERE u.role = 'CADRE'
		GROUP BY u.id
		ORDER BY COUNT(e.id) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CadreActivity
	for rows.Next() {
		var ca domain.CadreActivity
		err := rows.Scan(&ca.UserID, &ca.Name, &ca.District, &ca.Constituency, &ca.EventCount)
		if err != nil {
			return nil, err
		}
		out = append(out, ca)
	}
	return out, rows.Err()
}

func (r *analyticsRepo) TotalMediaByteViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(view_count), 0) FROM media_bytes`).Scan(&total)
	return total, err
}

func (r *analyticsRepo) EventsPerDay(ctx context.Context, since time.Time) ([]domain.DayCount, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT date(created_at), COUNT(*) FROM events
		WHERE status = 'APPROVED' AND created_at >= ?
		GROUP BY date(created_at)
		ORDER BY date(created_at) ASC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DayCount
	for rows.Next() {
		var dc domain.DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}
