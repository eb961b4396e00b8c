package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"tbs/catalog/internal/model"
)

func (s *Store) CreateSpecialization(ctx context.Context, spec model.Specialization) error {
	_, err := s.pool.Exec(ctx, `
    INSERT INTO specializations (id, name)
    VALUES ($1, $2)
  `, spec.ID, spec.Name)
	return err
}

func (s *Store) GetSpecialization(ctx context.Context, specID string) (model.Specialization, error) {
	var spec model.Specialization
	row := s.pool.QueryRow(ctx, `
    SELECT id, name
    FROM specializations
    WHERE id = $1
  `, specID)
	err := row.Scan(&spec.ID, &spec.Name)
	return spec, err
}

func (s *Store) ListSpecializations(ctx context.Context) ([]model.Specialization, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT id, name
    FROM specializations
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	specs := []model.Specialization{}
	for rows.Next() {
		var spec model.Specialization
		if err := rows.Scan(&spec.ID, &spec.Name); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}

func (s *Store) UpdateSpecializationName(ctx context.Context, specID, name string) (model.Specialization, error) {
	var spec model.Specialization
	row := s.pool.QueryRow(ctx, `
    UPDATE specializations
    SET name = $1
    WHERE id = $2
    RETURNING id, name
  `, name, specID)
	err := row.Scan(&spec.ID, &spec.Name)
	return spec, err
}

// DeleteSpecialization removes the specialization and every course item it
// owns in one transaction.
func (s *Store) DeleteSpecialization(ctx context.Context, specID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM course_items WHERE specialization_id = $1`, specID); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM specializations WHERE id = $1`, specID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}
