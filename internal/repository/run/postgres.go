package runrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/j3soon/nurse-scheduling-go/internal/loader"
	"github.com/j3soon/nurse-scheduling-go/internal/repository"
	"github.com/j3soon/nurse-scheduling-go/internal/run"
)

// DB wraps a SQL database connection for all PostgreSQL run operations.
type DB struct {
	*sql.DB
}

// NewDB creates a new PostgreSQL database connection, pinging it once to
// fail fast on a bad connection string.
func NewDB(connString string) (*DB, error) {
	sqldb, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{sqldb}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.DB.Close()
}

// Health checks database connectivity.
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// RunRepository implements repository.RunRepository for PostgreSQL. The
// scenario is stored as its YAML text (scenario_yaml) and the options and
// summary as JSON, in a single runs table rather than normalized tables — a
// run is read back whole, never queried by its scenario's internal fields.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new PostgreSQL run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) Create(ctx context.Context, rn *run.Run) error {
	if rn.ID == uuid.Nil {
		rn.ID = uuid.New()
	}

	optionsJSON, err := json.Marshal(rn.Options)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}
	summaryJSON, err := marshalSummary(rn.Summary)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO runs
		(id, scenario_yaml, options, status, summary, error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		rn.ID, rn.ScenarioYAML, optionsJSON, string(rn.Status), summaryJSON, rn.Error, rn.CreatedAt, rn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

func (r *RunRepository) GetByID(ctx context.Context, id uuid.UUID) (*run.Run, error) {
	query := `
		SELECT id, scenario_yaml, options, status, summary, error, created_at, updated_at
		FROM runs
		WHERE id = $1
	`
	rn := &run.Run{}
	var optionsJSON, summaryJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rn.ID, &rn.ScenarioYAML, &optionsJSON, (*string)(&rn.Status), &summaryJSON, &rn.Error, &rn.CreatedAt, &rn.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &repository.NotFoundError{ResourceType: "Run", ResourceID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if err := unmarshalRun(rn, optionsJSON, summaryJSON); err != nil {
		return nil, err
	}
	return rn, nil
}

func (r *RunRepository) Update(ctx context.Context, rn *run.Run) error {
	summaryJSON, err := marshalSummary(rn.Summary)
	if err != nil {
		return err
	}

	query := `
		UPDATE runs
		SET status = $2, summary = $3, error = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, rn.ID, string(rn.Status), summaryJSON, rn.Error, rn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &repository.NotFoundError{ResourceType: "Run", ResourceID: rn.ID.String()}
	}
	return nil
}

func (r *RunRepository) List(ctx context.Context, limit int) ([]*run.Run, error) {
	query := `
		SELECT id, scenario_yaml, options, status, summary, error, created_at, updated_at
		FROM runs
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*run.Run
	for rows.Next() {
		rn := &run.Run{}
		var optionsJSON, summaryJSON []byte
		if err := rows.Scan(&rn.ID, &rn.ScenarioYAML, &optionsJSON, (*string)(&rn.Status), &summaryJSON, &rn.Error, &rn.CreatedAt, &rn.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := unmarshalRun(rn, optionsJSON, summaryJSON); err != nil {
			return nil, err
		}
		runs = append(runs, rn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return runs, nil
}

func (r *RunRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

func marshalSummary(s *run.Summary) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return b, nil
}

func unmarshalRun(rn *run.Run, optionsJSON, summaryJSON []byte) error {
	if rn.ScenarioYAML != "" {
		doc, _, err := loader.Load(strings.NewReader(rn.ScenarioYAML), "")
		if err != nil {
			return fmt.Errorf("failed to reparse scenario yaml: %w", err)
		}
		rn.Scenario = doc
	}
	if len(optionsJSON) > 0 {
		if err := json.Unmarshal(optionsJSON, &rn.Options); err != nil {
			return fmt.Errorf("failed to unmarshal options: %w", err)
		}
	}
	if len(summaryJSON) > 0 {
		var summary run.Summary
		if err := json.Unmarshal(summaryJSON, &summary); err != nil {
			return fmt.Errorf("failed to unmarshal summary: %w", err)
		}
		rn.Summary = &summary
	}
	return nil
}
