package repository

import (
	"context"
	"database/sql"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by id
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []models.Category
	query := "SELECT id, type FROM categories ORDER BY id"
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, err
	}
	return convertToDomainCategories(categories), nil
}

// GetCategoryByID retrieves a category by id; (nil, nil) when absent
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category models.Category
	query := "SELECT id, type FROM categories WHERE id = $1"
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return convertToDomainCategory(&category), nil
}

// Helper functions for converting between domain and model types
func convertToDomainCategory(category *models.Category) *domain.Category {
	if category == nil {
		return nil
	}
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}

func convertToDomainCategories(categories []models.Category) []domain.Category {
	domainCategories := make([]domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = *convertToDomainCategory(&categories[i])
	}
	return domainCategories
}
