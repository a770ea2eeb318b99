//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pre-computed bcrypt hash of "password123" to keep fixtures fast.
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(ctx context.Context, db DBLike, email, role string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
	`, id, email, TestPasswordHash, role)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create test user: %w", err)
	}

	// ON CONFLICT may keep the existing row, so read the id back
	var actualID uuid.UUID
	if err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&actualID); err != nil {
		return uuid.Nil, fmt.Errorf("lookup test user: %w", err)
	}
	return actualID, nil
}

func CreateTestPos(ctx context.Context, db DBLike, name, kind string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(ctx, `
		INSERT INTO pos (id, name, description, kind, campus, street, house_number, postal_code, created_at, updated_at)
		VALUES ($1, $2, '', $3, 'Main Campus', 'University Ave', '1', '90210', $4, $4)
	`, id, name, kind, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create test pos: %w", err)
	}
	return id, nil
}

func CreateTestReview(ctx context.Context, db DBLike, posID, authorID uuid.UUID, content string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(ctx, `
		INSERT INTO reviews (id, pos_id, author_id, content, approval_count, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, FALSE, $5, $5)
	`, id, posID, authorID, content, now)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create test review: %w", err)
	}
	return id, nil
}

// ResetDB truncates every application table. Table list is discovered at
// runtime so new tables never need a fixture change.
func ResetDB(ctx context.Context, db DBLike) error {
	rows, err := db.Query(ctx, `
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public' AND tablename NOT LIKE 'atlas_%'
	`)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate tables: %w", err)
	}
	if len(tables) == 0 {
		return nil
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}
