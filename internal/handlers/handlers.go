package handlers

import (
	"Alternify/internal/auth"
	"Alternify/internal/config"
	"Alternify/internal/middleware"
	"Alternify/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services зависимости хендлеров, создаются один раз в main.
type Services struct {
	Queries         *service.QueryService
	Recommendations *service.RecommendationService
	Donations       *service.DonationService
	Tokens          *auth.TokenService
}

// NewHandler разводящий для хендлеров
func NewHandler(
	svc Services,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	// RealIP верит заголовкам клиента, поэтому только за своим прокси
	if config.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.ClientOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(svc.Tokens))

	// Handlers
	authHandler := NewAuthHandler(svc.Tokens, logger, config)
	queryHandler := NewQueryHandler(svc.Queries, logger, config)
	recHandler := NewRecommendationHandler(svc.Recommendations, logger, config)
	donationHandler := NewDonationHandler(svc.Donations, logger)

	r.Get("/", Health)

	// Session routes
	r.With(middleware.RateLimit(5, 10)).Post("/jwt", authHandler.Issue)
	r.Post("/logout", authHandler.Logout)

	// Public routes
	r.Get("/all-queries", queryHandler.ListAll)
	r.Get("/queries", queryHandler.Search)
	r.Get("/queries-count", queryHandler.Count)
	r.Get("/recommended-queries/{id}", recHandler.ListByQuery)
	r.Delete("/delete-recommendation/{id}", recHandler.Delete)
	r.Delete("/delete-queries/{id}", queryHandler.Delete)
	r.Put("/update-queries/{id}", queryHandler.Update)
	r.With(middleware.RateLimit(2, 5)).Post("/create-payment-intent", donationHandler.CreatePaymentIntent)
	r.Post("/donations", donationHandler.Record)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(svc.Tokens))

		r.Post("/add-queries", queryHandler.Create)
		r.Get("/product-details/{id}", queryHandler.Get)
		r.Post("/add-recommendation", recHandler.Create)
		r.Get("/recent-queries", queryHandler.ListAll)
		r.Get("/my-queries", queryHandler.ListMine)
		r.Get("/recommendation-for-me", recHandler.ListForMe)
		r.Get("/my-recommendation", recHandler.ListMine)
	})

	return &Handler{Router: r}
}

// Health проверка, что сервер поднят.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("alternify server is running"))
}
