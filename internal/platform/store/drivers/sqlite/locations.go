package sqlite

import (
	"context"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
)

type locationsRepo struct {
	q dbtx
}

func (r *locationsRepo) ListStates(ctx context.Context) ([]domain.State, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, name_te FROM states ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.State
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.ID, &s.Name, &s.NameTE); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *locationsRepo) ListDistricts(ctx context.Context, stateID string) ([]domain.District, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, state_id, name, name_te FROM districts
		WHERE state_id = ? ORDER BY name ASC`, stateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.District
	for rows.Next() {
		var d domain.District
		if err := rows.Scan(&d.ID, &d.StateID, &d.Name, &d.NameTE); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *locationsRepo) ListConstituencies(ctx context.Context, districtID string) ([]domain.Constituency, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, district_id, name FROM constituencies
		WHERE district_id = ? ORDER BY name ASC`, districtID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Constituency
	for rows.Next() {
		var c domain.Constituency
		if err := rows.Scan(&c.ID, &c.DistrictID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *locationsRepo) CreateState(ctx context.Context, s domain.State) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO states (id, name, name_te) VALUES (?, ?, ?)`,
		s.ID, s.Name, s.NameTE)
	return mapConstraint(err)
}

func (r *locationsRepo) CreateDistrict(ctx context.Context, d domain.District) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO districts (id, state_id, name, name_te) VALUES (?, ?, ?, ?)`,
		d.ID, d.StateID, d.Name, d.NameTE)
	return mapConstraint(err)
}

func (r *locationsRepo) CreateConstituency(ctx context.Context, c domain.Constituency) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO constituencies (id, district_id, name) VALUES (?, ?, ?)`,
		c.ID, c.DistrictID, c.Name)
	return mapConstraint(err)
}

func (r *locationsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM states`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
