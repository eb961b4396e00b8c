package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"tbs/catalog/internal/model"
)

type CourseItemUpdate struct {
	Name             *string
	Type             *string
	SpecializationID *string
}

// CreateCourseItem verifies the referenced specialization inside the insert
// transaction so the existence check cannot race the write. A duplicate
// (name, specialization) pair surfaces as a unique violation.
func (s *Store) CreateCourseItem(ctx context.Context, item model.CourseItem) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists bool
	row := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM specializations WHERE id = $1)`, item.SpecializationID)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrSpecializationNotFound
	}

	_, err = tx.Exec(ctx, `
    INSERT INTO course_items (id, name, type, specialization_id)
    VALUES ($1, $2, $3, $4)
  `, item.ID, item.Name, item.Type, item.SpecializationID)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) GetCourseItem(ctx context.Context, itemID string) (model.CourseItem, error) {
	var item model.CourseItem
	row := s.pool.QueryRow(ctx, `
    SELECT id, name, type, specialization_id
    FROM course_items
    WHERE id = $1
  `, itemID)
	err := row.Scan(&item.ID, &item.Name, &item.Type, &item.SpecializationID)
	return item, err
}

func (s *Store) ListCourseItems(ctx context.Context) ([]model.CourseItem, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT id, name, type, specialization_id
    FROM course_items
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourseItems(rows)
}

func (s *Store) ListCourseItemsBySpecialization(ctx context.Context, specID string) ([]model.CourseItem, error) {
	rows, err := s.pool.Query(ctx, `
    SELECT id, name, type, specialization_id
    FROM course_items
    WHERE specialization_id = $1
    ORDER BY name
  `, specID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourseItems(rows)
}

// UpdateCourseItem applies partial updates; unsupplied fields keep their
// prior value. Changing the parent requires the new specialization to exist.
func (s *Store) UpdateCourseItem(ctx context.Context, itemID string, update CourseItemUpdate) (model.CourseItem, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return model.CourseItem{}, err
	}
	defer tx.Rollback(ctx)

	var item model.CourseItem
	row := tx.QueryRow(ctx, `
    SELECT id, name, type, specialization_id
    FROM course_items
    WHERE id = $1
    FOR UPDATE
  `, itemID)
	if err := row.Scan(&item.ID, &item.Name, &item.Type, &item.SpecializationID); err != nil {
		return model.CourseItem{}, err
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Type != nil {
		item.Type = *update.Type
	}
	if update.SpecializationID != nil && *update.SpecializationID != item.SpecializationID {
		var exists bool
		row := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM specializations WHERE id = $1)`, *update.SpecializationID)
		if err := row.Scan(&exists); err != nil {
			return model.CourseItem{}, err
		}
		if !exists {
			return model.CourseItem{}, ErrSpecializationNotFound
		}
		item.SpecializationID = *update.SpecializationID
	}

	_, err = tx.Exec(ctx, `
    UPDATE course_items
    SET name = $1, type = $2, specialization_id = $3
    WHERE id = $4
  `, item.Name, item.Type, item.SpecializationID, item.ID)
	if err != nil {
		return model.CourseItem{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.CourseItem{}, err
	}
	return item, nil
}

func (s *Store) DeleteCourseItem(ctx context.Context, itemID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM course_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanCourseItems(rows pgx.Rows) ([]model.CourseItem, error) {
	items := []model.CourseItem{}
	for rows.Next() {
		var item model.CourseItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.SpecializationID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
