package menu

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through the NewMenuItem factory method.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is an orderable dish in the catalog.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Dietary and course classes must be valid
//   - Immutable once referenced by a line item (referenced by id, not copied)
//
// Availability is captured by quote creation at submission time and never
// re-checked afterwards.
type MenuItem struct {
	// id is the unique identifier for the menu item
	id kernel.UUID

	// name is the display name of the dish
	name string

	// dietaryClass classifies the dish as vegetarian or non-vegetarian
	dietaryClass DietaryClass

	// courseClass places the dish within the menu structure
	courseClass CourseClass

	// isAvailable tells whether the dish can currently be ordered
	isAvailable bool

	// isConstructed ensures the item was created via NewMenuItem
	isConstructed bool
}

// NewMenuItem creates a MenuItem with validation. This is the only way to
// create a valid MenuItem.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty)
//   - dietaryClass: Vegetarian or NonVegetarian
//   - courseClass: Starter, Mains, or Desserts
//   - isAvailable: whether the dish can currently be ordered
//
// Returns the created item, or a validation error if any parameter is invalid.
func NewMenuItem(
	id kernel.UUID,
	name string,
	dietaryClass DietaryClass,
	courseClass CourseClass,
	isAvailable bool,
) (*MenuItem, error) {
	item := &MenuItem{
		isAvailable:   isAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDietaryClass(dietaryClass),
		item.setCourseClass(courseClass),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the MenuItem instance was properly constructed through NewMenuItem.
// This prevents bypassing validation by directly instantiating the struct.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name of the dish.
func (m *MenuItem) Name() string {
	return m.name
}

// DietaryClass returns the dietary classification of the dish.
func (m *MenuItem) DietaryClass() DietaryClass {
	return m.dietaryClass
}

// CourseClass returns the course classification of the dish.
func (m *MenuItem) CourseClass() CourseClass {
	return m.courseClass
}

// IsAvailable tells whether the dish can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setDietaryClass(dietaryClass DietaryClass) error {
	if err := dietaryClass.Validate(); err != nil {
		return err
	}
	m.dietaryClass = dietaryClass
	return nil
}

func (m *MenuItem) setCourseClass(courseClass CourseClass) error {
	if err := courseClass.Validate(); err != nil {
		return err
	}
	m.courseClass = courseClass
	return nil
}
