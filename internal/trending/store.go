package trending

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// RecipeCounters is one published recipe's engagement snapshot.
type RecipeCounters struct {
	RecipeID   string
	Likes      int64
	Saves      int64
	Made       int64
	Views      int64
	CreatedAt  time.Time
}

// ScoredRecipe pairs a recipe with its computed score.
type ScoredRecipe struct {
	RecipeID string
	Score    float64
}

// Store runs the batch read/write side of trending recomputation with
// plain SQL. The API serves reads through GORM; this path avoids loading
// full models for what is a counters-only scan.
type Store struct {
	db *sql.DB
}

// OpenStore connects to Postgres through the pgx stdlib driver.
func OpenStore(databaseURL string) (*Store, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing handle (used by tests).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ListCounters pages through published recipes' engagement counters.
func (s *Store) ListCounters(ctx context.Context, limit, offset int) ([]RecipeCounters, error) {
	query := `
		SELECT id, likes_count, saves_count, made_count, views_count, created_at
		FROM recipes
		WHERE is_published = true
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe counters: %w", err)
	}
	defer rows.Close()

	var out []RecipeCounters
	for rows.Next() {
		var rc RecipeCounters
		if err := rows.Scan(&rc.RecipeID, &rc.Likes, &rc.Saves, &rc.Made, &rc.Views, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe counters: %w", err)
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// UpsertScores writes a batch of computed scores in a single transaction.
func (s *Store) UpsertScores(ctx context.Context, batch []ScoredRecipe, computedAt time.Time) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trending_recipes (recipe_id, score, trending_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (recipe_id)
		DO UPDATE SET
			score = EXCLUDED.score,
			trending_at = EXCLUDED.trending_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, sr := range batch {
		if _, err := stmt.ExecContext(ctx, sr.RecipeID, sr.Score, computedAt); err != nil {
			return fmt.Errorf("failed to upsert trending score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FlushViews folds Redis-accumulated view deltas into the recipes table.
func (s *Store) FlushViews(ctx context.Context, deltas map[string]int64) error {
	if len(deltas) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE recipes SET views_count = views_count + $2 WHERE id = $1
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for recipeID, delta := range deltas {
		if delta <= 0 {
			continue
		}
		if _, err := stmt.ExecContext(ctx, recipeID, delta); err != nil {
			return fmt.Errorf("failed to flush views for recipe %s: %w", recipeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
