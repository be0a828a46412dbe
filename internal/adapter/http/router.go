package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Options struct {
	Development     bool
	FrontendURL     string
	RateLimitMax    int
	RateLimitWindow time.Duration
	// LimiterStorage shares rate-limit counters between instances; nil keeps
	// them in process memory.
	LimiterStorage fiber.Storage
	AccessLog      bool
}

// NewApp builds the fiber application with middleware and every route.
func NewApp(h *Handler, opts Options) *fiber.App {
	if opts.FrontendURL == "" {
		opts.FrontendURL = "http://localhost:3000"
	}
	app := fiber.New(fiber.Config{
		AppName:      "resume-builder",
		ErrorHandler: ErrorHandler(opts.Development),
		BodyLimit:    10 * 1024 * 1024,
		UnescapePath: true,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.FrontendURL,
		AllowCredentials: true,
	}))

	api := app.Group("/api")
	if opts.RateLimitMax > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: opts.RateLimitWindow,
			Storage:    opts.LimiterStorage,
			LimitReached: func(c *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
			},
		}))
	}

	api.Get("/health", health(opts.FrontendURL))
	h.Register(api)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
	return app
}

// Register mounts the auth, resume and template routes on r.
func (h *Handler) Register(r fiber.Router) {
	auth := r.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Get("/google", h.GoogleLogin)
	auth.Get("/google/callback", h.GoogleCallback)
	auth.Get("/profile", h.RequireAuth, h.Profile)
	auth.Put("/experience-level", h.RequireAuth, h.UpdateExperienceLevel)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Get("/verify-reset-token/:token", h.VerifyResetToken)
	auth.Post("/logout", h.RequireAuth, h.Logout)

	resume := r.Group("/resume", h.RequireAuth)
	resume.Get("/stats/overview", h.ResumeStats)
	resume.Post("/", h.CreateResume)
	resume.Get("/", h.ListResumes)
	resume.Get("/:id", h.GetResume)
	resume.Put("/:id", h.UpdateResume)
	resume.Delete("/:id", h.DeleteResume)
	resume.Post("/:id/duplicate", h.DuplicateResume)
	resume.Get("/:id/download", h.DownloadResume)

	templates := r.Group("/templates")
	templates.Get("/", h.OptionalAuth, h.ListTemplates)
	templates.Get("/categories/list", h.TemplateCategories)
	templates.Get("/recommendations/user", h.RequireAuth, h.RecommendTemplates)
	templates.Get("/category/:category", h.OptionalAuth, h.TemplatesByCategory)
	templates.Get("/search/:query", h.OptionalAuth, h.SearchTemplates)
	templates.Get("/:id", h.OptionalAuth, h.GetTemplate)
}

func health(frontendURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Resume Builder Backend is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"cors":      fiber.Map{"origin": frontendURL, "credentials": true},
		})
	}
}
