package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite driver
	"github.com/smartfarm-io/console/pkg/models"
)

const dbOperationTimeout = 5 * time.Second

const schemaSQL = `
    CREATE TABLE IF NOT EXISTS tasks (
        id INTEGER PRIMARY KEY,
        type TEXT NOT NULL,
        priority TEXT NOT NULL,
        status TEXT NOT NULL,
        target TEXT NOT NULL,
        assignee TEXT NOT NULL,
        age TEXT NOT NULL
    )
`

// SQLiteStore implements Repository on a local database, so dispatch
// changes survive console restarts.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the task database at
// dbPath and seeds it with the default dispatch items when empty.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open task database: %w", err)
	}

	s := &SQLiteStore{db: db}

	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) init() error {
	ctx, cancel := context.WithTimeout(context.Background(), dbOperationTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return fmt.Errorf("count tasks: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, item := range seedTasks() {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO tasks (id, type, priority, status, target, assignee, age) VALUES (?, ?, ?, ?, ?, ?, ?)",
			item.ID, item.Type, item.Priority, string(item.Status), item.Target, item.Assignee, item.Age,
		)
		if err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]models.TaskItem, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, type, priority, status, target, assignee, age FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var items []models.TaskItem

	for rows.Next() {
		var (
			item   models.TaskItem
			status string
		)

		if err := rows.Scan(&item.ID, &item.Type, &item.Priority, &status, &item.Target, &item.Assignee, &item.Age); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}

		item.Status = models.TaskStatus(status)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}

	return items, nil
}

func (s *SQLiteStore) UpdateStatus(ctx context.Context, id int, status models.TaskStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}

	if affected == 0 {
		return ErrUnknownTask
	}

	return nil
}

// Close releases the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
