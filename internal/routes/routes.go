package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every HTTP handler the API mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Profile    *handlers.ProfileHandler
	Logs       *handlers.LogHandler
	Preference *handlers.PreferenceHandler
	Community  *handlers.CommunityHandler
	Moderation *handlers.ModerationHandler
}

func Setup(app *fiber.App, cfg *config.Config, directory *services.DirectoryService, h Handlers) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)
	api.Post("/nutrition/targets", h.Profile.PreviewTargets)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/federated/:provider", h.Auth.FederatedSignIn)

	// Token plus a matching session pointer
	session := []fiber.Handler{middleware.JWTProtected(cfg), middleware.SessionRequired(directory)}
	protected := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, session...), handler)
	}

	api.Post("/auth/logout", protected(h.Auth.Logout)...)
	api.Get("/auth/me", protected(h.Auth.Me)...)

	api.Get("/profile", protected(h.Profile.Get)...)
	api.Put("/profile", protected(h.Profile.Save)...)
	api.Patch("/profile", protected(h.Profile.Update)...)

	api.Get("/logs/recent", protected(h.Logs.Recent)...)
	api.Post("/logs/meals", protected(h.Logs.AppendMeal)...)
	api.Get("/logs/:date", protected(h.Logs.Get)...)
	api.Put("/logs/:date/water", protected(h.Logs.SetWater)...)
	api.Put("/logs/:date/workout", protected(h.Logs.SetWorkout)...)

	api.Get("/preferences/muscle", protected(h.Preference.GetMuscle)...)
	api.Put("/preferences/muscle", protected(h.Preference.SetMuscle)...)

	api.Get("/contests", protected(h.Community.ListContests)...)
	api.Post("/contests/:id/join", protected(h.Community.JoinContest)...)
	api.Get("/submissions", protected(h.Community.ListSubmissions)...)
	api.Post("/submissions", protected(h.Community.CreateSubmission)...)
	api.Get("/posts", protected(h.Community.ListPosts)...)
	api.Post("/posts", protected(h.Community.CreatePost)...)
	api.Delete("/posts/:id", protected(h.Community.DeletePost)...)
	api.Post("/posts/:id/like", protected(h.Community.LikePost)...)
	api.Post("/posts/:id/comments", protected(h.Community.AddComment)...)

	// Admin console (session + admin flag)
	admin := api.Group("/admin", append(session, middleware.AdminRequired())...)
	admin.Get("/stats", h.Moderation.Stats)
	admin.Get("/accounts", h.Moderation.ListAccounts)
	admin.Delete("/accounts/:id", h.Moderation.DeleteAccount)
	admin.Post("/users/:id/ban", h.Moderation.BanUser)
	admin.Post("/contests", h.Moderation.CreateContest)
	admin.Put("/contests/:id", h.Moderation.UpdateContest)
	admin.Delete("/contests/:id", h.Moderation.DeleteContest)
	admin.Put("/submissions/:id/review", h.Moderation.ReviewSubmission)
	admin.Delete("/submissions/:id", h.Moderation.DeleteSubmission)
}
