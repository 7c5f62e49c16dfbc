// Package restserver exposes the daylight models over HTTP.
package restserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/chrissnell/daylight/internal/log"
	"github.com/chrissnell/daylight/pkg/config"
	"github.com/chrissnell/daylight/pkg/daylight"
)

type contextKey string

const requestIDKey contextKey = "request_id"

const shutdownTimeout = 5 * time.Second

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	model      config.ModelData
	estimator  *daylight.Estimator
	Server     http.Server
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, logger *zap.SugaredLogger) (*Controller, error) {
	model, err := configProvider.GetModel()
	if err != nil {
		return nil, fmt.Errorf("error loading model configuration: %w", err)
	}
	rc, err := configProvider.GetRESTServer()
	if err != nil {
		return nil, fmt.Errorf("error loading REST server configuration: %w", err)
	}

	est, err := model.Estimator()
	if err != nil {
		return nil, fmt.Errorf("error building estimator: %w", err)
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		restConfig: *rc,
		model:      *model,
		estimator:  est,
		logger:     logger,
	}
	ctrl.handlers = NewHandlers(ctrl)

	if rc.ListenAddr == "" {
		logger.Info("rest.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.restConfig.ListenAddr = config.DefaultListenAddr
	}
	if rc.Port == 0 {
		logger.Infof("rest.port not provided; defaulting to %d", config.DefaultHTTPPort)
		ctrl.restConfig.Port = config.DefaultHTTPPort
	}

	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.restConfig.ListenAddr, ctrl.restConfig.Port)
	ctrl.Server.Handler = ctrl.Handler()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// StartController starts the REST server and shuts it down when the
// controller's context is cancelled.
func (c *Controller) StartController() error {
	log.Infof("Starting REST server on %s...", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if err := c.Server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := c.Server.Shutdown(ctx); err != nil {
			log.Errorf("REST server shutdown: %v", err)
		}
	}()

	return nil
}

// Handler returns the complete HTTP handler: router plus middleware.
func (c *Controller) Handler() http.Handler {
	var h http.Handler = c.setupRouter()
	h = c.loggingMiddleware(h)
	h = requestIDMiddleware(h)
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
	)(h)
	return handlers.RecoveryHandler()(h)
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/daylight", c.handlers.GetDaylight).Methods(http.MethodGet)
	router.HandleFunc("/daylight/year", c.handlers.GetDaylightYear).Methods(http.MethodGet)
	router.HandleFunc("/coefficients", c.handlers.GetCoefficients).Methods(http.MethodGet)
	router.HandleFunc("/seasons", c.handlers.GetSeasons).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)

	return router
}

// requestIDMiddleware propagates a caller-supplied X-Request-ID when it is a
// valid UUID and generates one otherwise.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (c *Controller) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.LogHTTPRequest(log.HTTPLogEntry{
			RequestID:  requestIDFrom(r.Context()),
			Method:     r.Method,
			Path:       r.URL.Path,
			Query:      r.URL.RawQuery,
			Status:     m.Code,
			Duration:   m.Duration,
			Size:       int(m.Written),
			RemoteAddr: r.RemoteAddr,
			UserAgent:  r.UserAgent(),
		})
	})
}
