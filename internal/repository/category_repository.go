package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r categoryRow) toModel() models.Category {
	return models.Category{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt.UTC()}
}

// CategoryRepository is the category registry backed by the categories table
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	_, err := r.db.ExecContext(ctx,
		r.db.Rebind(`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`),
		c.ID, c.Name, c.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create category %q: %w", c.Name, ErrDuplicate)
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row,
		r.db.Rebind(`SELECT id, name, created_at FROM categories WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	c := row.toModel()
	return &c, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row,
		r.db.Rebind(`SELECT id, name, created_at FROM categories WHERE name = ?`), name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	c := row.toModel()
	return &c, nil
}

// List returns every category, newest first
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var rows []categoryRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, created_at FROM categories ORDER BY created_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]models.Category, len(rows))
	for i, row := range rows {
		categories[i] = row.toModel()
	}
	return categories, nil
}

func (r *CategoryRepository) Rename(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	res, err := r.db.ExecContext(ctx,
		r.db.Rebind(`UPDATE categories SET name = ? WHERE id = ?`), name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("rename category to %q: %w", name, ErrDuplicate)
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the category and detaches it from every task in one transaction
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		tx.Rebind(`DELETE FROM task_categories WHERE category_id = ?`), id); err != nil {
		return rollback(tx, fmt.Errorf("detach category: %w", err))
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM categories WHERE id = ?`), id)
	if err != nil {
		return rollback(tx, fmt.Errorf("delete category: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return rollback(tx, fmt.Errorf("delete category: %w", err))
	}
	if n == 0 {
		return rollback(tx, ErrNotFound)
	}

	return tx.Commit()
}

// Resolve splits ids into the categories that exist and the ids that do not
func (r *CategoryRepository) Resolve(ctx context.Context, ids []uuid.UUID) ([]models.Category, []uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	query, args, err := sqlx.In(`SELECT id, name, created_at FROM categories WHERE id IN (?)`, uuidStrings(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("build resolve query: %w", err)
	}

	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, nil, fmt.Errorf("resolve categories: %w", err)
	}

	byID := make(map[uuid.UUID]models.Category, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.toModel()
	}

	found := make([]models.Category, 0, len(rows))
	var missing []uuid.UUID
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			found = append(found, c)
		} else {
			missing = append(missing, id)
		}
	}
	return found, missing, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
