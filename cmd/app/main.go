package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"globetrotter/cmd/fx/account_fx"
	"globetrotter/cmd/fx/assistant_fx"
	"globetrotter/cmd/fx/booking_fx"
	"globetrotter/cmd/fx/config_fx"
	"globetrotter/cmd/fx/controllers_fx"
	"globetrotter/cmd/fx/db_fx"
	"globetrotter/cmd/fx/destination_fx"
	"globetrotter/cmd/fx/itinerary_fx"
	"globetrotter/cmd/fx/mail_fx"
	"globetrotter/cmd/fx/memcache_fx"
	"globetrotter/cmd/fx/payment_fx"
	"globetrotter/cmd/fx/review_fx"
	"globetrotter/cmd/fx/trip_fx"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		payment_fx.Module,
		mail_fx.Module,
		booking_fx.Module,
		trip_fx.Module,
		destination_fx.Module,
		review_fx.Module,
		assistant_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *utils.TokenManager,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	bookingController *controllers.BookingController,
	tripController *controllers.TripController,
	destinationController *controllers.DestinationController,
	reviewController *controllers.ReviewController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Fatal("Invalid TRUSTED_PROXIES", zap.Error(err))
	}
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware(logger))

	RegisterRoutes(r, middleware.JWTAuthMiddleware(tokens),
		accountController, itineraryController, bookingController, tripController,
		destinationController, reviewController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	auth gin.HandlerFunc,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	bookingController *controllers.BookingController,
	tripController *controllers.TripController,
	destinationController *controllers.DestinationController,
	reviewController *controllers.ReviewController,
	healthController *controllers.HealthController) {

	r.GET("/health", healthController.Health)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/me", auth, accountController.Me)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.POST("/compose", itineraryController.Compose)
	itineraryGroup.POST("/suggest", itineraryController.Suggest)
	itineraryGroup.GET("/:planId", itineraryController.GetPlan)
	itineraryGroup.GET("/:planId/:tierId", itineraryController.GetOption)
	itineraryGroup.GET("/:planId/:tierId/pdf", itineraryController.ExportPDF)

	r.GET("/services", bookingController.ListServices)

	bookingGroup := r.Group("/bookings")
	bookingGroup.POST("/quote", bookingController.Quote)
	bookingGroup.Use(auth)
	bookingGroup.POST("", bookingController.CreateBooking)
	bookingGroup.GET("", bookingController.ListBookings)
	bookingGroup.POST("/checkout", bookingController.Checkout)
	bookingGroup.POST("/itinerary", bookingController.BookItinerary)
	bookingGroup.POST("/:id/cancel", bookingController.CancelBooking)

	tripGroup := r.Group("/trips", auth)
	tripGroup.POST("", tripController.CreateTrip)
	tripGroup.GET("", tripController.ListTrips)
	tripGroup.POST("/from-plan", tripController.SaveFromPlan)
	tripGroup.GET("/:id", tripController.GetTrip)

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("", destinationController.ListDestinations)
	destinationGroup.GET("/featured", destinationController.FeaturedDestinations)
	destinationGroup.GET("/nearby", destinationController.NearbyDestinations)
	destinationGroup.GET("/:id", destinationController.GetDestination)
	destinationGroup.GET("/:id/reviews", destinationController.ListReviews)

	reviewGroup := r.Group("/reviews", auth)
	reviewGroup.POST("", reviewController.CreateReview)
	reviewGroup.GET("/me", reviewController.ListMyReviews)
	reviewGroup.PUT("/:id", reviewController.UpdateReview)
	reviewGroup.DELETE("/:id", reviewController.DeleteReview)
	reviewGroup.POST("/:id/helpful", reviewController.MarkHelpful)
}
