package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Rental   *RentalHandler
	Checkout *CheckoutHandler
	Contact  *ContactHandler
}

// NewRouter builds the API routes. Catalog browsing and contact intake are
// public; rental checkout and order views require an authenticated user.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	api.HandleFunc("/tools", h.Catalog.ListTools).Methods(http.MethodGet)
	api.HandleFunc("/tools/{id:[0-9]+}", h.Catalog.GetTool).Methods(http.MethodGet)
	api.HandleFunc("/products", h.Catalog.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{part_number}", h.Catalog.GetProduct).Methods(http.MethodGet)

	api.HandleFunc("/contact", h.Contact.Submit).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(auth.RequireUser)
	authed.HandleFunc("/rentals", h.Rental.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/rentals", h.Rental.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/checkout/{order_id:[0-9]+}", h.Checkout.GetCheckout).Methods(http.MethodGet)
	authed.HandleFunc("/checkout/{order_id:[0-9]+}/method", h.Checkout.ChooseMethod).Methods(http.MethodPost)

	return r
}
