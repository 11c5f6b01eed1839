package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	JWTSecret  []byte
	Auth       *AuthHTTP
	Catalog    *CatalogHTTP
	Engagement *EngagementHTTP
	Cart       *CartHTTP
	Search     *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	api := e.Group("/api")

	api.GET("/health", Health)

	api.POST("/contact", d.Engagement.SubmitContact)
	api.GET("/contacts", d.Engagement.ListContacts)
	api.POST("/newsletter", d.Engagement.Subscribe)
	api.POST("/analytics/track", d.Engagement.Track)
	api.GET("/analytics/stats", d.Engagement.Stats)

	api.GET("/products", d.Catalog.GetProducts)
	api.GET("/products/:id", d.Catalog.GetProduct)
	if d.Search != nil {
		api.GET("/products/search", d.Search.Search)
	}

	auth := api.Group("/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/login", d.Auth.Login)

	protected := api.Group("", RequireAuth(d.JWTSecret))
	protected.GET("/cart", d.Cart.GetCart)
	protected.POST("/cart", d.Cart.AddToCart)
	protected.DELETE("/cart/:id", d.Cart.RemoveCartItem)
	protected.POST("/order", d.Cart.MakeOrder)
	protected.GET("/orders", d.Cart.GetOrders)
}
