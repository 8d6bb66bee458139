package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/shopspring/decimal"
)

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price::text, currency, category,
			meal_type, COALESCE(image, ''), ingredients, allergens, condiments,
			COALESCE(available, true), COALESCE(preparation_time, ''),
			COALESCE(calories, 0), COALESCE(spicy_level, 0),
			COALESCE(is_vegetarian, false), COALESCE(is_vegan, false),
			COALESCE(is_gluten_free, false)
		FROM menu_items`)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var (
			item      domain.MenuItem
			priceText string
			rawLists  [3][]byte
		)

		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&priceText,
			&item.Currency,
			&item.Category,
			&item.MealType,
			&item.Image,
			&rawLists[0],
			&rawLists[1],
			&rawLists[2],
			&item.Available,
			&item.PreparationTime,
			&item.Calories,
			&item.SpicyLevel,
			&item.IsVegetarian,
			&item.IsVegan,
			&item.IsGlutenFree,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}

		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price for menu item %d: %w", item.ID, err)
		}
		item.Price = price.InexactFloat64()

		if item.Ingredients, err = decodeStringList(rawLists[0]); err != nil {
			return nil, fmt.Errorf("failed to decode ingredients for menu item %d: %w", item.ID, err)
		}
		if item.Allergens, err = decodeStringList(rawLists[1]); err != nil {
			return nil, fmt.Errorf("failed to decode allergens for menu item %d: %w", item.ID, err)
		}
		if item.Condiments, err = decodeStringList(rawLists[2]); err != nil {
			return nil, fmt.Errorf("failed to decode condiments for menu item %d: %w", item.ID, err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	ingredients, err := encodeStringList(item.Ingredients)
	if err != nil {
		return 0, fmt.Errorf("failed to encode ingredients: %w", err)
	}
	allergens, err := encodeStringList(item.Allergens)
	if err != nil {
		return 0, fmt.Errorf("failed to encode allergens: %w", err)
	}
	condiments, err := encodeStringList(item.Condiments)
	if err != nil {
		return 0, fmt.Errorf("failed to encode condiments: %w", err)
	}

	var id int
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (
			name, description, price, currency, category, meal_type,
			image, ingredients, allergens, condiments, available,
			preparation_time, calories, spicy_level, is_vegetarian,
			is_vegan, is_gluten_free
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		item.Name,
		item.Description,
		item.Price,
		item.Currency,
		item.Category,
		item.MealType,
		item.Image,
		ingredients,
		allergens,
		condiments,
		item.Available,
		item.PreparationTime,
		item.Calories,
		item.SpicyLevel,
		item.IsVegetarian,
		item.IsVegan,
		item.IsGlutenFree,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create menu item: %w", err)
	}

	return id, nil
}

// decodeStringList turns a JSONB column value into a string slice, defaulting
// NULL to an empty slice.
func decodeStringList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}

	return list, nil
}

func encodeStringList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}

	return json.Marshal(list)
}
