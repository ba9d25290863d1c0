package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves available menu items from the database.
// Unavailable dishes are filtered out so customers only order what chefs
// can actually cook.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu catalog queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve all available menu items.
// Results are sorted by name for consistent output.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			dietary_class,
			course_class
		FROM menu_items
		WHERE is_available
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetMenuQueryResponse
		var id uuid.UUID
		var dietaryClass, courseClass int

		err = rows.Scan(
			&id,
			&itemResp.Name,
			&dietaryClass,
			&courseClass,
		)
		if err != nil {
			return nil, err
		}

		if itemResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		itemResp.DietaryClass = menu.DietaryClass(dietaryClass).String()
		itemResp.CourseClass = menu.CourseClass(courseClass).String()

		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
