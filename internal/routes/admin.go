package routes

import (
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/router"
)

// RegisterAdminRoutes registers the admin console routes. Everything under
// /admin requires an authenticated admin session.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	admin := r.Group(middleware.RequireAdmin)

	// Dashboard
	admin.Get("/admin", deps.DashboardHandler.ServeHTTP)

	// Product management
	admin.Get("/admin/products", deps.ProductHandler.List)
	admin.Get("/admin/products/new", deps.ProductHandler.New)
	admin.Post("/admin/products/new", deps.ProductHandler.Create)
	admin.Get("/admin/products/{id}/edit", deps.ProductHandler.Edit)
	admin.Post("/admin/products/{id}/edit", deps.ProductHandler.Update)
	admin.Post("/admin/products/{id}/delete", deps.ProductHandler.Delete)

	// Inventory management
	admin.Get("/admin/inventory", deps.InventoryHandler.List)
	admin.Post("/admin/inventory", deps.InventoryHandler.Create)
	admin.Post("/admin/inventory/{id}/stock", deps.InventoryHandler.UpdateStock)
}
