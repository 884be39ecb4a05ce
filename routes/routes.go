package routes

import (
	"bistro-boss-api/handlers"
	"bistro-boss-api/middleware"

	"github.com/gin-gonic/gin"
)

// Options tunes which guards are applied.
type Options struct {
	// GuardOpenRoutes adds token+admin to PATCH /users/admin/:id and a token
	// to DELETE /carts/:id. Both are open when false.
	GuardOpenRoutes bool
}

// SetupRoutes registers every endpoint on r.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, opts Options) {
	authed := middleware.AuthRequired(h.Tokens)
	admin := middleware.AdminRequired(h.Store.Users, h.Log)

	// ── Public ─────────────────────────────────────────────────────
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/jwt", h.IssueToken)
	r.GET("/menu", h.ListMenu)
	r.GET("/reviews", h.ListReviews)
	r.POST("/users", h.CreateUser)
	r.POST("/carts", h.AddToCart)
	r.POST("/payments", h.RecordPayment)

	// ── Open by default ────────────────────────────────────────────
	if opts.GuardOpenRoutes {
		r.PATCH("/users/admin/:id", authed, admin, h.MakeAdmin)
		r.DELETE("/carts/:id", authed, h.RemoveFromCart)
	} else {
		r.PATCH("/users/admin/:id", h.MakeAdmin)
		r.DELETE("/carts/:id", h.RemoveFromCart)
	}

	// ── Token required ─────────────────────────────────────────────
	r.GET("/users/admin/:email", authed, h.CheckAdmin)
	r.GET("/carts", authed, h.ListCart)
	r.POST("/create-payment-intent", authed, h.CreatePaymentIntent)

	// ── Admin ──────────────────────────────────────────────────────
	r.GET("/users", authed, admin, h.ListUsers)
	r.POST("/menu", authed, admin, h.AddMenuItem)
	r.DELETE("/menu/:id", authed, admin, h.DeleteMenuItem)
	r.GET("/admin-stats", authed, admin, h.AdminStats)
}
