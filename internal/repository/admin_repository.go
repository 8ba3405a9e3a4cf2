package repository

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

// TaskFilter narrows the admin task listing. Nil fields are ignored and the
// rest are combined with AND; the due date bounds are inclusive.
type TaskFilter struct {
	UserID      *uuid.UUID
	Status      *models.Status
	DueDateFrom *time.Time
	DueDateTo   *time.Time
}

type adminTaskRow struct {
	taskRow
	OwnerName         string         `db:"owner_name"`
	OwnerEmail        string         `db:"owner_email"`
	CategoryID        uuid.NullUUID  `db:"category_id"`
	CategoryName      sql.NullString `db:"category_name"`
	CategoryCreatedAt sql.NullTime   `db:"category_created_at"`
}

type userSummaryRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	TaskCount int       `db:"task_count"`
}

type statusCountRow struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// AdminRepository runs the cross-user queries behind the admin dashboard
type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Tasks streams the tasks matching filter, newest first, each with its owner
// and categories. Every range over the returned sequence runs the query again.
func (r *AdminRepository) Tasks(ctx context.Context, filter TaskFilter) iter.Seq2[*models.TaskWithOwner, error] {
	return func(yield func(*models.TaskWithOwner, error) bool) {
		var (
			where []string
			args  []any
		)
		if filter.UserID != nil {
			where = append(where, "t.user_id = ?")
			args = append(args, *filter.UserID)
		}
		if filter.Status != nil {
			where = append(where, "t.status = ?")
			args = append(args, string(*filter.Status))
		}
		if filter.DueDateFrom != nil {
			where = append(where, "t.due_date >= ?")
			args = append(args, filter.DueDateFrom.UTC())
		}
		if filter.DueDateTo != nil {
			where = append(where, "t.due_date <= ?")
			args = append(args, filter.DueDateTo.UTC())
		}

		query := `
			SELECT t.id, t.title, t.description, t.status, t.priority, t.due_date, t.user_id, t.created_at,
			       u.name AS owner_name, u.email AS owner_email,
			       c.id AS category_id, c.name AS category_name, c.created_at AS category_created_at
			FROM tasks t
			JOIN users u ON u.id = t.user_id
			LEFT JOIN task_categories tc ON tc.task_id = t.id
			LEFT JOIN categories c ON c.id = tc.category_id`
		if len(where) > 0 {
			query += " WHERE " + strings.Join(where, " AND ")
		}
		// Rows of one task stay adjacent so they can be folded while streaming
		query += " ORDER BY t.created_at DESC, t.id, c.name"

		rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
		if err != nil {
			yield(nil, fmt.Errorf("query tasks: %w", err))
			return
		}
		defer rows.Close()

		var current *models.TaskWithOwner
		for rows.Next() {
			var row adminTaskRow
			if err := rows.StructScan(&row); err != nil {
				yield(nil, fmt.Errorf("scan task: %w", err))
				return
			}

			if current != nil && current.ID != row.ID {
				if !yield(current, nil) {
					return
				}
				current = nil
			}
			if current == nil {
				current = &models.TaskWithOwner{
					Task: *row.taskRow.toModel(),
					Owner: models.Owner{
						ID:    row.UserID,
						Name:  row.OwnerName,
						Email: row.OwnerEmail,
					},
				}
			}
			if row.CategoryID.Valid {
				current.Categories = append(current.Categories, models.Category{
					ID:        row.CategoryID.UUID,
					Name:      row.CategoryName.String,
					CreatedAt: row.CategoryCreatedAt.Time.UTC(),
				})
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("iterate tasks: %w", err))
			return
		}
		if current != nil {
			yield(current, nil)
		}
	}
}

// UserSummaries returns every user with its task count, newest first
func (r *AdminRepository) UserSummaries(ctx context.Context) ([]models.UserSummary, error) {
	var rows []userSummaryRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT u.id, u.name, u.email, u.role, u.created_at, COUNT(t.id) AS task_count
		FROM users u
		LEFT JOIN tasks t ON t.user_id = u.id
		GROUP BY u.id, u.name, u.email, u.role, u.created_at
		ORDER BY u.created_at DESC, u.id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]models.UserSummary, len(rows))
	for i, row := range rows {
		users[i] = models.UserSummary{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Role:      models.Role(row.Role),
			CreatedAt: row.CreatedAt.UTC(),
			TaskCount: row.TaskCount,
		}
	}
	return users, nil
}

func (r *AdminRepository) CountUsersByRole(ctx context.Context, role models.Role) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM users WHERE role = ?`), string(role)); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *AdminRepository) CountTasks(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM tasks`); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func (r *AdminRepository) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM categories`); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// CountOverdue counts tasks due strictly before now that are not DONE
func (r *AdminRepository) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		r.db.Rebind(`SELECT COUNT(*) FROM tasks WHERE due_date < ? AND status <> ?`),
		now.UTC(), string(models.StatusDone),
	)
	if err != nil {
		return 0, fmt.Errorf("count overdue tasks: %w", err)
	}
	return n, nil
}

// CountTasksByStatus groups tasks by status; statuses without tasks are absent
func (r *AdminRepository) CountTasksByStatus(ctx context.Context) (map[models.Status]int, error) {
	var rows []statusCountRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT status, COUNT(*) AS count FROM tasks GROUP BY status`); err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}

	counts := make(map[models.Status]int, len(rows))
	for _, row := range rows {
		counts[models.Status(row.Status)] = row.Count
	}
	return counts, nil
}
