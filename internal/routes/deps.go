// Package routes wires handlers onto the router. Registration is split by
// surface: storefront and admin.
package routes

import (
	"github.com/stridewear/stride/internal/handler/admin"
	"github.com/stridewear/stride/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Home
	HomeHandler *storefront.HomeHandler

	// Category browsing
	CategoryHandler *storefront.CategoryHandler

	// Product detail and cart additions
	ProductHandler *storefront.ProductHandler

	// Cart, clear, checkout
	CartHandler *storefront.CartHandler

	// Login and logout
	AuthHandler *storefront.AuthHandler
}

// AdminDeps contains dependencies for admin console routes
type AdminDeps struct {
	// Dashboard
	DashboardHandler *admin.DashboardHandler

	// Product CRUD
	ProductHandler *admin.ProductHandler

	// Inventory management
	InventoryHandler *admin.InventoryHandler
}
