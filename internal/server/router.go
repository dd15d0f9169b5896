// Package server assembles the HTTP router from the domain packages.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/config"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/dog"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/establishment"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/holiday"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/observation"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/payment"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/reservation"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/session"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/events"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/live"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/metrics"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/middleware"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/jwt"
)

func init() {
	binding.EnableDecoderDisallowUnknownFields = true
}

// Deps are the process-wide collaborators of the router. Redis, Publisher,
// Metrics and Gatherer may be nil; a nil Hub gets a fresh one.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	JWT       *jwt.Service
	Redis     *redis.Client
	Publisher events.Publisher
	Hub       *live.Hub
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	for _, migrate := range []func(*gorm.DB) error{
		user.Migrate,
		establishment.Migrate,
		activity.Migrate,
		dog.Migrate,
		session.Migrate,
		reservation.Migrate,
		holiday.Migrate,
		observation.Migrate,
		payment.Migrate,
	} {
		if err := migrate(db); err != nil {
			return err
		}
	}
	return nil
}

func NewRouter(d Deps) *gin.Engine {
	hub := d.Hub
	if hub == nil {
		hub = live.NewHub()
	}

	userRepo := user.NewRepository(d.DB)
	establishmentRepo := establishment.NewRepository(d.DB)
	activityRepo := activity.NewRepository(d.DB)
	dogRepo := dog.NewRepository(d.DB)
	sessionRepo := session.NewRepository(d.DB)
	reservationRepo := reservation.NewRepository(d.DB)

	userHandler := user.NewHandler(user.NewService(userRepo, d.JWT, d.Config.BcryptCost))
	establishmentHandler := establishment.NewHandler(establishment.NewService(establishmentRepo, userRepo))
	activityHandler := activity.NewHandler(activity.NewService(activityRepo))
	dogHandler := dog.NewHandler(dog.NewService(dogRepo))
	sessionHandler := session.NewHandler(session.NewService(
		sessionRepo, activityRepo, userRepo, establishmentRepo, reservationRepo, d.Metrics,
	))
	reservationHandler := reservation.NewHandler(reservation.NewService(
		reservationRepo, sessionRepo, dogRepo, events.Fanout{d.Publisher, hub}, d.Metrics,
	))
	holidayHandler := holiday.NewHandler(holiday.NewService(holiday.NewRepository(d.DB)))
	observationHandler := observation.NewHandler(observation.NewService(observation.NewRepository(d.DB), dogRepo))
	paymentHandler := payment.NewHandler(payment.NewService(
		payment.NewRepository(d.DB),
		reservationRepo,
		sessionRepo,
		activityRepo,
		payment.NewSignedLinkGateway(d.Config.Payment),
		d.Metrics,
	))
	liveHandler := live.NewHandler(hub, d.JWT)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(d.Config.CORSAllowedOrigins))
	r.Use(middleware.Metrics(d.Metrics))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Config.Metrics.Enabled && d.Gatherer != nil {
		r.GET(d.Config.Metrics.Path, gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	{
		// public
		user.RegisterPublicRoutes(v1, userHandler)
		payment.RegisterPublicRoutes(v1, paymentHandler)
		live.RegisterRoutes(v1, liveHandler)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(d.JWT))
		protected.Use(middleware.RateLimit(d.Config.RateLimit, d.Redis))
		{
			user.RegisterRoutes(protected, userHandler)
			establishment.RegisterRoutes(protected, establishmentHandler)
			activity.RegisterRoutes(protected, activityHandler)
			dog.RegisterRoutes(protected, dogHandler)
			session.RegisterRoutes(protected, sessionHandler)
			reservation.RegisterRoutes(protected, reservationHandler)
			holiday.RegisterRoutes(protected, holidayHandler)
			observation.RegisterRoutes(protected, observationHandler)
			payment.RegisterRoutes(protected, paymentHandler)
		}
	}

	return r
}
