package controllers

import "beautybar-backend/config"

// nextOrder returns the display rank that appends a new row to the end of
// the collection's current ordering.
func nextOrder(model interface{}) int {
	var next int
	config.DB.Model(model).Select(`COALESCE(MAX("order"), -1) + 1`).Scan(&next)
	return next
}
