// Package menu models the orderable catalog: menu items with their dietary
// and course classification plus an availability flag.
//
// The catalog is a read-only input to quote creation. A line item references
// a menu item by id and captures availability at creation time; menu items
// are never mutated by the lifecycle core.
package menu
