package menu_test

import (
	"testing"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	t.Run("should create a valid menu item", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := menu.NewMenuItem(id, "Paneer Tikka", menu.Vegetarian, menu.Starter, true)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "Paneer Tikka", item.Name())
		assert.Equal(t, menu.Vegetarian, item.DietaryClass())
		assert.Equal(t, menu.Starter, item.CourseClass())
		assert.True(t, item.IsAvailable())
	})

	t.Run("should create an unavailable menu item", func(t *testing.T) {
		item, err := menu.NewMenuItem(kernel.NewUUID(), "Lamb Rogan Josh", menu.NonVegetarian, menu.Mains, false)

		require.NoError(t, err)
		assert.False(t, item.IsAvailable())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.UUID{}, "Paneer Tikka", menu.Vegetarian, menu.Starter, true)

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "", menu.Vegetarian, menu.Starter, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with unknown dietary class", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "Paneer Tikka", menu.UnknownDietaryClass, menu.Starter, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dietary class is invalid")
	})

	t.Run("should fail with unknown course class", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "Paneer Tikka", menu.Vegetarian, menu.UnknownCourseClass, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "course class is invalid")
	})
}

func TestMenuItem_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value items", func(t *testing.T) {
		var nilItem *menu.MenuItem
		assert.ErrorIs(t, nilItem.Validate(), menu.ErrMenuItemIsNotConstructed)

		var zeroItem menu.MenuItem
		assert.ErrorIs(t, zeroItem.Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_IsEqual(t *testing.T) {
	t.Run("should compare items by id", func(t *testing.T) {
		id := kernel.NewUUID()
		first, err := menu.NewMenuItem(id, "Paneer Tikka", menu.Vegetarian, menu.Starter, true)
		require.NoError(t, err)
		second, err := menu.NewMenuItem(id, "Renamed Dish", menu.Vegetarian, menu.Starter, false)
		require.NoError(t, err)
		other, err := menu.NewMenuItem(kernel.NewUUID(), "Paneer Tikka", menu.Vegetarian, menu.Starter, true)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(other))
		assert.False(t, first.IsEqual(nil))
	})
}

func TestDietaryClass(t *testing.T) {
	t.Run("should validate known classes", func(t *testing.T) {
		require.NoError(t, menu.Vegetarian.Validate())
		require.NoError(t, menu.NonVegetarian.Validate())
		require.Error(t, menu.UnknownDietaryClass.Validate())
	})

	t.Run("should return class names", func(t *testing.T) {
		assert.Equal(t, "vegetarian", menu.Vegetarian.String())
		assert.Equal(t, "non-vegetarian", menu.NonVegetarian.String())
		assert.Equal(t, "unknown", menu.UnknownDietaryClass.String())
	})
}

func TestCourseClass(t *testing.T) {
	t.Run("should validate known classes", func(t *testing.T) {
		require.NoError(t, menu.Starter.Validate())
		require.NoError(t, menu.Mains.Validate())
		require.NoError(t, menu.Desserts.Validate())
		require.Error(t, menu.UnknownCourseClass.Validate())
	})

	t.Run("should return class names", func(t *testing.T) {
		assert.Equal(t, "starter", menu.Starter.String())
		assert.Equal(t, "mains", menu.Mains.String())
		assert.Equal(t, "desserts", menu.Desserts.String())
	})
}
