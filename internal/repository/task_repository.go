// internal/repository/task_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

const taskColumns = `id, title, description, status, priority, due_date, user_id, created_at`

type taskRow struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	DueDate     time.Time      `db:"due_date"`
	UserID      uuid.UUID      `db:"user_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r taskRow) toModel() *models.Task {
	return &models.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description.String,
		Status:      models.Status(r.Status),
		Priority:    models.Priority(r.Priority),
		DueDate:     r.DueDate.UTC(),
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt.UTC(),
		Categories:  []models.Category{},
	}
}

type taskCategoryRow struct {
	TaskID    uuid.UUID `db:"task_id"`
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// TaskUpdate carries the changed fields of a task and the category set delta.
// Nil fields are left untouched.
type TaskUpdate struct {
	Title            *string
	Description      *string
	Status           *models.Status
	Priority         *models.Priority
	DueDate          *time.Time
	AttachCategories []uuid.UUID
	DetachCategories []uuid.UUID
}

// TaskMutation derives the update from the task as currently stored. It runs
// inside the write transaction after the task row has been locked, so the
// state it sees is the state the update applies to. A returned error aborts
// the update and is passed back to the caller unchanged.
type TaskMutation func(current *models.Task) (*TaskUpdate, error)

// TaskRepository persists tasks and their category associations
type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// Create inserts the task together with its category associations
func (r *TaskRepository) Create(ctx context.Context, t *models.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		tx.Rebind(`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		t.ID, t.Title, nullString(t.Description), string(t.Status), string(t.Priority),
		t.DueDate.UTC(), t.UserID, t.CreatedAt.UTC(),
	)
	if err != nil {
		return rollback(tx, fmt.Errorf("insert task: %w", err))
	}

	if err := attachCategories(ctx, tx, t.ID, t.CategoryIDs()); err != nil {
		return rollback(tx, err)
	}

	return tx.Commit()
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return getTask(ctx, r.db, id)
}

// ListByOwner returns the tasks owned by userID, newest first
func (r *TaskRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		r.db.Rebind(`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY created_at DESC, id`),
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]*models.Task, len(rows))
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
		ids[i] = row.ID
	}

	byTask, err := loadCategories(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if cats, ok := byTask[t.ID]; ok {
			t.Categories = cats
		}
	}
	return tasks, nil
}

// Update locks the task, lets mutate compute the changes from the stored
// state, applies them with the category delta atomically and returns the task
// as stored after the commit
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, mutate TaskMutation) (*models.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	// Read the current state under the row lock
	current, err := lockTask(ctx, tx, id)
	if err != nil {
		return nil, rollback(tx, err)
	}

	input, err := mutate(current)
	if err != nil {
		return nil, rollback(tx, err)
	}

	var (
		sets []string
		args []any
	)
	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullString(*input.Description))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, input.DueDate.UTC())
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := tx.ExecContext(ctx,
			tx.Rebind(`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ?`), args...)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("update task: %w", err))
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, rollback(tx, ErrNotFound)
		}
	}

	if len(input.DetachCategories) > 0 {
		query, qargs, err := sqlx.In(
			`DELETE FROM task_categories WHERE task_id = ? AND category_id IN (?)`,
			id.String(), uuidStrings(input.DetachCategories),
		)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("build detach query: %w", err))
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), qargs...); err != nil {
			return nil, rollback(tx, fmt.Errorf("detach categories: %w", err))
		}
	}

	if err := attachCategories(ctx, tx, id, input.AttachCategories); err != nil {
		return nil, rollback(tx, err)
	}

	task, err := getTask(ctx, tx, id)
	if err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit task update: %w", err)
	}
	return task, nil
}

// Delete removes the task and its category associations
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		tx.Rebind(`DELETE FROM task_categories WHERE task_id = ?`), id); err != nil {
		return rollback(tx, fmt.Errorf("delete task categories: %w", err))
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return rollback(tx, fmt.Errorf("delete task: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return rollback(tx, fmt.Errorf("delete task: %w", err))
	}
	if n == 0 {
		return rollback(tx, ErrNotFound)
	}

	return tx.Commit()
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.QueryerContext
	Rebind(string) string
}

func getTask(ctx context.Context, q queryer, id uuid.UUID) (*models.Task, error) {
	return selectTask(ctx, q, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
}

// lockTask reads the task for update. PostgreSQL locks the row; SQLite
// connections open write transactions with BEGIN IMMEDIATE (see
// database.Config.DSN), which already excludes other writers.
func lockTask(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	if tx.DriverName() == "postgres" {
		query += ` FOR UPDATE`
	}
	return selectTask(ctx, tx, query, id)
}

func selectTask(ctx context.Context, q queryer, query string, id uuid.UUID) (*models.Task, error) {
	var row taskRow
	err := sqlx.GetContext(ctx, q, &row, q.Rebind(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	task := row.toModel()
	byTask, err := loadCategories(ctx, q, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if cats, ok := byTask[id]; ok {
		task.Categories = cats
	}
	return task, nil
}

func loadCategories(ctx context.Context, q queryer, taskIDs []uuid.UUID) (map[uuid.UUID][]models.Category, error) {
	result := make(map[uuid.UUID][]models.Category)
	if len(taskIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT tc.task_id, c.id, c.name, c.created_at
		FROM task_categories tc
		JOIN categories c ON c.id = tc.category_id
		WHERE tc.task_id IN (?)
		ORDER BY c.name`, uuidStrings(taskIDs))
	if err != nil {
		return nil, fmt.Errorf("build category query: %w", err)
	}

	var rows []taskCategoryRow
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load task categories: %w", err)
	}
	for _, row := range rows {
		result[row.TaskID] = append(result[row.TaskID], models.Category{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return result, nil
}

// attachCategories links the categories to the task. Links that already
// exist are kept; a category that no longer exists yields ErrMissingReference.
func attachCategories(ctx context.Context, tx *sqlx.Tx, taskID uuid.UUID, categoryIDs []uuid.UUID) error {
	stmt := tx.Rebind(`INSERT INTO task_categories (task_id, category_id) VALUES (?, ?) ON CONFLICT DO NOTHING`)
	for _, categoryID := range categoryIDs {
		if _, err := tx.ExecContext(ctx, stmt, taskID, categoryID); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("attach category %s: %w", categoryID, ErrMissingReference)
			}
			return fmt.Errorf("attach category %s: %w", categoryID, err)
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
