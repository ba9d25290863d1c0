// Package menurepo provides data transfer objects and mapping functions for
// menu catalog persistence. The catalog is read-shared reference data; the
// lifecycle core only reads it.
package menurepo

import (
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	DietaryClass int       `gorm:"type:int;not null"`
	CourseClass  int       `gorm:"type:int;not null"`
	IsAvailable  bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item domain entity to its database representation.
func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		Name:         item.Name(),
		DietaryClass: int(item.DietaryClass()),
		CourseClass:  int(item.CourseClass()),
		IsAvailable:  item.IsAvailable(),
	}
}

// toDomain converts a database DTO to a menu item domain entity.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(
		id,
		dto.Name,
		menu.DietaryClass(dto.DietaryClass),
		menu.CourseClass(dto.CourseClass),
		dto.IsAvailable,
	)
}
