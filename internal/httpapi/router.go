// Package httpapi is the HTTP surface: routing, the access guard and the
// resource handlers for players, coaches and match schedules.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/oops"

	"academy-api/internal/auth"
	"academy-api/internal/clock"
	"academy-api/internal/media"
	"academy-api/internal/metrics"
	"academy-api/internal/models"
	"academy-api/internal/query"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (auth.Session, error)
	Authenticate(ctx context.Context, raw string) (models.Identity, error)
	Logout(ctx context.Context, id models.Identity) error
}

type PlayerStore interface {
	Create(ctx context.Context, in models.PlayerInput) (models.Player, error)
	List(ctx context.Context, f models.PlayerFilter, p query.Page) (query.Envelope[models.Player], error)
	Update(ctx context.Context, id int64, patch models.PlayerPatch) ([]models.Player, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type CoachStore interface {
	Create(ctx context.Context, in models.CoachInput) (models.Coach, error)
	List(ctx context.Context, f models.CoachFilter, p query.Page) (query.Envelope[models.Coach], error)
	Update(ctx context.Context, id int64, patch models.CoachPatch) ([]models.Coach, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ScheduleStore interface {
	Create(ctx context.Context, in models.ScheduleInput) (models.Schedule, error)
	List(ctx context.Context, f models.ScheduleFilter) ([]models.Schedule, error)
	Update(ctx context.Context, id int64, patch models.SchedulePatch) ([]models.Schedule, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the router wires into handlers.
// Metrics may be nil.
type Deps struct {
	Logger         *slog.Logger
	Clock          clock.Clock
	Auth           Authenticator
	Players        PlayerStore
	Coaches        CoachStore
	Schedules      ScheduleStore
	Uploader       media.Uploader
	DB             Pinger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Logger == nil || d.Auth == nil || d.Players == nil || d.Coaches == nil ||
		d.Schedules == nil || d.Uploader == nil || d.DB == nil {
		return nil, oops.Code("ROUTER_DEPS_MISSING").Errorf("router dependencies are incomplete")
	}
	if d.Clock == nil {
		d.Clock = clock.New()
	}

	corsMW, err := CORS(d.AllowedOrigins)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(corsMW, Errors(d.Logger), Recovery(d.Logger))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found", "code": "NOT_FOUND"})
	})

	r.GET("/", Root())
	r.GET("/healthz", Health(d.DB, d.Logger))
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	guard := Guard(d.Auth)

	api := r.Group("/api")
	{
		api.POST("/login", Login(d.Auth, d.Clock))
		api.GET("/me", SessionGuard(d.Auth), Me())
		api.POST("/logout", guard, Logout(d.Auth))

		api.GET("/pemain", ListPlayers(d.Players))
		api.POST("/pemain", guard, CreatePlayer(d.Players, d.Uploader, d.Logger))
		api.PUT("/pemain/:id", guard, UpdatePlayer(d.Players, d.Uploader, d.Logger))
		api.DELETE("/pemain/:id", guard, DeletePlayer(d.Players, d.Logger))

		api.GET("/pelatih", ListCoaches(d.Coaches))
		api.POST("/pelatih", guard, CreateCoach(d.Coaches, d.Uploader, d.Logger))
		api.PUT("/pelatih/:id", guard, UpdateCoach(d.Coaches, d.Uploader, d.Logger))
		api.DELETE("/pelatih/:id", guard, DeleteCoach(d.Coaches, d.Logger))

		api.GET("/jadwal", ListSchedules(d.Schedules))
		api.POST("/jadwal", guard, CreateSchedule(d.Schedules, d.Uploader, d.Logger))
		api.PUT("/jadwal/:id", guard, UpdateSchedule(d.Schedules, d.Uploader, d.Logger))
		api.DELETE("/jadwal/:id", guard, DeleteSchedule(d.Schedules, d.Logger))
	}

	return r, nil
}
