package router

import (
	"database/sql"
	"net/http"
	"time"

	notifyadapter "babylog/internal/adapters/notify"
	mem "babylog/internal/adapters/storage/memory"
	mdb "babylog/internal/adapters/storage/mongodb"
	pg "babylog/internal/adapters/storage/postgres"
	"babylog/internal/domain/alarm"
	"babylog/internal/domain/events"
	"babylog/internal/domain/history"
	"babylog/internal/domain/summary"
	"babylog/internal/middleware"
	"babylog/internal/platform/logger"
	"babylog/internal/ports/auth"
	"babylog/internal/ports/images"
	"babylog/internal/ports/kv"
	"babylog/internal/ports/notify"

	_ "babylog/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Storage de eventos: Mongo si viene, si no Postgres, si no in-memory.
	DB    *sql.DB
	Mongo *mongo.Database

	// Opcionales; si faltan se derivan de DB/Mongo o se usan in-memory.
	Settings  kv.Store
	Scheduler notify.Scheduler
	Images    images.Store

	Logger logger.Logger

	// Zona por defecto para resúmenes y alarma; nil = time.Local.
	Location *time.Location
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		eventRepo events.Repository
		settings  = opts.Settings
		imgs      = opts.Images
		scheduler = opts.Scheduler
	)

	switch {
	case opts.Mongo != nil:
		eventRepo = mdb.NewEventsRepo(opts.Mongo)
	case opts.DB != nil:
		eventRepo = pg.NewEventsRepo(opts.DB)
	default:
		eventRepo = mem.NewEventRepo()
	}

	if imgs == nil {
		if opts.Mongo != nil {
			imgs = mdb.NewImageStore(opts.Mongo)
		} else {
			imgs = mem.NewImageStore()
		}
	}
	if settings == nil {
		if opts.DB != nil {
			settings = pg.NewSettingsStore(opts.DB)
		} else {
			settings = mem.NewSettingsStore()
		}
	}
	if scheduler == nil {
		scheduler = notifyadapter.NewRecorder()
	}

	// Services por módulo
	eventsSvc := events.NewService(eventRepo, imgs)
	historySvc := history.NewService(eventsSvc)
	summarySvc := summary.NewService(eventsSvc)
	alarmSvc := alarm.NewService(eventsSvc, settings, scheduler, log)

	// Rutas por módulo
	events.RegisterRoutes(r, eventsSvc)
	history.RegisterRoutes(r, historySvc)
	summary.RegisterRoutes(r, summarySvc, opts.Location)
	alarm.RegisterRoutes(r, alarmSvc, opts.Location)

	return r
}
