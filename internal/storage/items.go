package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/codeboxhq/codebox/internal/model"
)

// ErrItemNotFound indicates the requested item does not exist.
var ErrItemNotFound = errors.New("item not found")

// ItemFilter narrows ListItems results. Zero values mean no filtering.
type ItemFilter struct {
	Category model.Category
	Limit    int
}

// SaveItem inserts a recognition record.
func (s *SQLiteStorage) SaveItem(ctx context.Context, item *model.Item) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	if item.ID == "" {
		return fmt.Errorf("item ID is required")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (
			id, code, original_text, category, platform,
			station_name, station_address, created_at, expires_at, used
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		item.ID,
		item.Code,
		item.OriginalText,
		string(item.Category),
		item.Platform,
		item.StationName,
		item.StationAddress,
		item.CreatedAt,
		item.ExpiresAt,
		item.Used,
	)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

// GetItem fetches a single record by ID.
func (s *SQLiteStorage) GetItem(ctx context.Context, id string) (*model.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, code, original_text, category, platform,
			station_name, station_address, created_at, expires_at, used
		FROM items WHERE id = ?
	`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ListItems returns records matching the filter, most recent first.
func (s *SQLiteStorage) ListItems(ctx context.Context, filter ItemFilter) ([]model.Item, error) {
	query := `
		SELECT id, code, original_text, category, platform,
			station_name, station_address, created_at, expires_at, used
		FROM items`
	args := []any{}

	if filter.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(filter.Category))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// MarkUsed flags a record as consumed.
func (s *SQLiteStorage) MarkUsed(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE items SET used = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark item used: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteItem removes a record.
func (s *SQLiteStorage) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	var item model.Item
	var category string
	var originalText, platform, stationName, stationAddress sql.NullString
	var expiresAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.Code,
		&originalText,
		&category,
		&platform,
		&stationName,
		&stationAddress,
		&item.CreatedAt,
		&expiresAt,
		&item.Used,
	)
	if err != nil {
		return nil, err
	}

	item.Category = model.ParseCategory(category)
	item.OriginalText = originalText.String
	item.Platform = platform.String
	item.StationName = stationName.String
	item.StationAddress = stationAddress.String
	if expiresAt.Valid {
		t := expiresAt.Time
		item.ExpiresAt = &t
	}
	return &item, nil
}
