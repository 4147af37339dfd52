package routes

import (
	"github.com/stridewear/stride/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Home page (spotlight products)
	r.Get("/", deps.HomeHandler.ServeHTTP)

	// Product browsing
	r.Get("/category/{name}", deps.CategoryHandler.ServeHTTP)
	r.Get("/product/{id}", deps.ProductHandler.Detail)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/add", deps.ProductHandler.Add)
	r.Post("/cart/clear", deps.CartHandler.Clear)

	// Checkout
	r.Post("/checkout", deps.CartHandler.Checkout)

	// Authentication
	r.Get("/login", deps.AuthHandler.ShowForm)
	r.Post("/login", deps.AuthHandler.HandleSubmit)
	r.Post("/logout", deps.AuthHandler.HandleLogout)
}
