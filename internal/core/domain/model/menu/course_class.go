package menu

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// CourseClass places a menu item within the party menu structure.
type CourseClass int

const (
	// UnknownCourseClass represents an invalid or undefined class.
	UnknownCourseClass CourseClass = iota

	// Starter is served before the main course.
	Starter

	// Mains is the principal course of the meal.
	Mains

	// Desserts closes the meal.
	Desserts
)

func getCourseClassStrings() map[CourseClass]string {
	return map[CourseClass]string{
		UnknownCourseClass: "unknown",
		Starter:            "starter",
		Mains:              "mains",
		Desserts:           "desserts",
	}
}

// Validate checks if the CourseClass value is valid.
func (c CourseClass) Validate() error {
	if c != Starter && c != Mains && c != Desserts {
		return errs.NewValueIsInvalidErrorWithCause("course class is invalid",
			fmt.Errorf("%d is not a valid course class", c))
	}
	return nil
}

// String returns the human-readable class name.
// Implements the fmt.Stringer interface.
func (c CourseClass) String() string {
	if str, ok := getCourseClassStrings()[c]; ok {
		return str
	}
	return "unknown"
}
