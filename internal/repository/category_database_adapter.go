package repository

import (
	"context"
	"fmt"

	"showcase/internal/domain"
	"showcase/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// ListCategories returns all categories ordered by id
func (r *CategoryDatabaseAdapter) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []models.Category
	query := "SELECT id, category_type FROM categories ORDER BY id"
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	categories := make([]domain.Category, len(rows))
	for i, row := range rows {
		categories[i] = domain.Category{ID: row.ID, Type: row.Type}
	}
	return categories, nil
}

// CategoryExists reports whether a category with the id is stored
func (r *CategoryDatabaseAdapter) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM categories WHERE id = :1"
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, query, id); err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", id, err)
	}
	return count > 0, nil
}

// SaveCategory persists a new category. A zero ID is allocated from categories_seq.
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	exec := GetExecutor(ctx, r.db)

	if category.ID == 0 {
		if err := exec.GetContext(ctx, &category.ID, "SELECT categories_seq.NEXTVAL FROM dual"); err != nil {
			return fmt.Errorf("failed to allocate category id: %w", err)
		}
	}

	query := "INSERT INTO categories (id, category_type) VALUES (:1, :2)"
	if _, err := exec.ExecContext(ctx, query, category.ID, category.Type); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}
