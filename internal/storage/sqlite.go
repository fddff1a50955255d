package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/infrastructure/config"
	"dinner-menu/internal/pkg/common"
)

const timeLayout = time.RFC3339Nano

// SQLiteStore 食譜資料庫（SQLite），食材以 JSON 存放
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore 開啟資料庫並建立資料表
func NewSQLiteStore(cfg *config.StoreConfig) (*SQLiteStore, error) {
	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(cfg.BusyTimeout); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close 關閉資料庫
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping 檢查資料庫連線
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) initSchema(busyTimeout time.Duration) error {
	if busyTimeout > 0 {
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds())); err != nil {
			return fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	schema := `
    CREATE TABLE IF NOT EXISTS recipes (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL,
        date TEXT NOT NULL DEFAULT '',
        ingredients TEXT NOT NULL DEFAULT '[]',
        oven INTEGER NOT NULL DEFAULT 0,
        stove INTEGER NOT NULL DEFAULT 0,
        portions INTEGER NOT NULL DEFAULT 1,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_recipes_created_at ON recipes(created_at);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const selectColumns = `SELECT id, title, date, ingredients, oven, stove, portions, created_at, updated_at FROM recipes`

// List 列出所有食譜（依建立時間）
func (s *SQLiteStore) List(ctx context.Context) ([]common.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []common.Recipe{}
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// Get 取得單一食譜
func (s *SQLiteStore) Get(ctx context.Context, id string) (common.Recipe, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	r, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return common.Recipe{}, common.ErrRecipeNotFound
	}
	return r, err
}

// Create 新增食譜
func (s *SQLiteStore) Create(ctx context.Context, r common.Recipe) error {
	ingredients, err := encodeIngredients(r.Ingredients)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO recipes (id, title, date, ingredients, oven, stove, portions, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err = s.db.ExecContext(ctx, query,
		r.ID, r.Title, r.Date, ingredients, r.Oven, r.Stove, r.Portions,
		r.CreatedAt.UTC().Format(timeLayout), r.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrConflict.WithMessage("recipe already exists").WithErr(err)
		}
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

// Update 更新食譜（created_at 不變）
func (s *SQLiteStore) Update(ctx context.Context, r common.Recipe) error {
	ingredients, err := encodeIngredients(r.Ingredients)
	if err != nil {
		return err
	}

	query := `
        UPDATE recipes
        SET title = ?, date = ?, ingredients = ?, oven = ?, stove = ?, portions = ?, updated_at = ?
        WHERE id = ?
    `
	res, err := s.db.ExecContext(ctx, query,
		r.Title, r.Date, ingredients, r.Oven, r.Stove, r.Portions,
		r.UpdatedAt.UTC().Format(timeLayout), r.ID)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return expectOneRow(res)
}

// Delete 刪除食譜
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return expectOneRow(res)
}

// SearchByIngredient 找出含有指定食材（名稱包含 term，不分大小寫）的食譜
func (s *SQLiteStore) SearchByIngredient(ctx context.Context, term string) ([]common.Recipe, error) {
	needle := ingredient.NormalizeItem(term)
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if needle == "" {
		return all, nil
	}

	out := []common.Recipe{}
	for _, r := range all {
		for _, ing := range r.Ingredients {
			if strings.Contains(ingredient.Key(ing), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipe(row scanner) (common.Recipe, error) {
	var (
		r                    common.Recipe
		ingredientsJSON      string
		createdAt, updatedAt string
	)
	if err := row.Scan(&r.ID, &r.Title, &r.Date, &ingredientsJSON, &r.Oven, &r.Stove,
		&r.Portions, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("failed to scan recipe: %w", err)
	}

	// 舊資料可能是字串陣列，統一經 Raw 轉換
	var raws []ingredient.Raw
	if err := common.ParseJSON(ingredientsJSON, &raws); err != nil {
		return r, fmt.Errorf("failed to decode ingredients of recipe %s: %w", r.ID, err)
	}
	r.Ingredients = ingredient.ResolveAll(raws)

	var err error
	if r.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return r, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if r.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return r, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return r, nil
}

func encodeIngredients(ings []common.Ingredient) (string, error) {
	if ings == nil {
		ings = []common.Ingredient{}
	}
	data, err := common.ToJSON(ings)
	if err != nil {
		return "", fmt.Errorf("failed to encode ingredients: %w", err)
	}
	return data, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return common.ErrRecipeNotFound
	}
	return nil
}
