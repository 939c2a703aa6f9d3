// Package api provides the REST HTTP surface of the survey backend.
package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/demoworks/surveyd/internal/api/auth"
	"github.com/demoworks/surveyd/internal/api/handlers"
	apiMiddleware "github.com/demoworks/surveyd/internal/api/middleware"
	"github.com/demoworks/surveyd/internal/logger"
	"github.com/demoworks/surveyd/internal/metrics"
	"github.com/demoworks/surveyd/internal/telemetry"
	"github.com/demoworks/surveyd/pkg/survey/policy"
	"github.com/demoworks/surveyd/pkg/survey/store"
)

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for proper client identification
//   - Custom request logging using the internal logger
//   - Prometheus request instrumentation
//   - Panic recovery to prevent server crashes
//   - Request timeout to prevent hung requests
//
// Routes:
//   - GET /health - Liveness probe
//   - GET /health/ready - Readiness probe
//   - GET /metrics - Prometheus scrape endpoint (when metrics are enabled)
//   - GET /v1/system/ping - Authenticated connectivity check
//   - /v1/surveys/* - Survey management, group-scoped
//   - /v1/surveys/{surveyId}/{buildings,owners,surveyors,attachments,
//     reusables,wastes,hazardous-wastes}/* - Survey child entities
//   - /v1/{building-types,reusable-materials,waste-categories,waste-materials,
//     hazardous-materials,waste-specifiers,waste-usages}/* - Material catalogs
//     (reads authenticated, writes admin only)
func NewRouter(st store.Store, verifier *auth.Verifier, requestTimeout time.Duration, metricsCfg metrics.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(traceRequests)
	if metricsCfg.Enabled {
		r.Use(metrics.NewHTTPMetrics(nil).Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// Health routes - unauthenticated
	healthHandler := handlers.NewHealthHandler(st)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	// Prometheus scrape endpoint - unauthenticated, like health probes
	if metricsCfg.Enabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	// Root redirect to health for convenience
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	guard := policy.NewGuard(st)
	surveyHandler := handlers.NewSurveyHandler(st, guard)
	buildingHandler := handlers.NewBuildingHandler(st, guard)
	ownerHandler := handlers.NewOwnerInformationHandler(st, guard)
	surveyorHandler := handlers.NewSurveyorHandler(st, guard)
	attachmentHandler := handlers.NewAttachmentHandler(st, guard)
	reusableHandler := handlers.NewReusableHandler(st, guard)
	wasteHandler := handlers.NewWasteHandler(st, guard)
	hazardousHandler := handlers.NewHazardousWasteHandler(st, guard)
	catalogHandler := handlers.NewCatalogHandler(st)

	// API v1 routes - all authenticated
	r.Route("/v1", func(r chi.Router) {
		r.Use(apiMiddleware.BearerAuth(verifier))

		r.Get("/system/ping", healthHandler.Ping)

		r.Route("/surveys", func(r chi.Router) {
			r.Post("/", surveyHandler.Create)
			r.Get("/", surveyHandler.List)

			r.Route("/{surveyId}", func(r chi.Router) {
				r.Get("/", surveyHandler.Get)
				r.Put("/", surveyHandler.Update)
				r.Delete("/", surveyHandler.Delete)

				r.Route("/buildings", func(r chi.Router) {
					r.Post("/", buildingHandler.Create)
					r.Get("/", buildingHandler.List)
					r.Get("/{buildingId}", buildingHandler.Get)
					r.Put("/{buildingId}", buildingHandler.Update)
					r.Delete("/{buildingId}", buildingHandler.Delete)
				})

				r.Route("/owners", func(r chi.Router) {
					r.Post("/", ownerHandler.Create)
					r.Get("/", ownerHandler.List)
					r.Get("/{ownerId}", ownerHandler.Get)
					r.Put("/{ownerId}", ownerHandler.Update)
					r.Delete("/{ownerId}", ownerHandler.Delete)
				})

				r.Route("/surveyors", func(r chi.Router) {
					r.Post("/", surveyorHandler.Create)
					r.Get("/", surveyorHandler.List)
					r.Get("/{surveyorId}", surveyorHandler.Get)
					r.Put("/{surveyorId}", surveyorHandler.Update)
					r.Delete("/{surveyorId}", surveyorHandler.Delete)
				})

				r.Route("/attachments", func(r chi.Router) {
					r.Post("/", attachmentHandler.Create)
					r.Get("/", attachmentHandler.List)
					r.Get("/{attachmentId}", attachmentHandler.Get)
					r.Put("/{attachmentId}", attachmentHandler.Update)
					r.Delete("/{attachmentId}", attachmentHandler.Delete)
				})

				r.Route("/reusables", func(r chi.Router) {
					r.Post("/", reusableHandler.Create)
					r.Get("/", reusableHandler.List)
					r.Get("/{reusableId}", reusableHandler.Get)
					r.Put("/{reusableId}", reusableHandler.Update)
					r.Delete("/{reusableId}", reusableHandler.Delete)
				})

				r.Route("/wastes", func(r chi.Router) {
					r.Post("/", wasteHandler.Create)
					r.Get("/", wasteHandler.List)
					r.Get("/{wasteId}", wasteHandler.Get)
					r.Put("/{wasteId}", wasteHandler.Update)
					r.Delete("/{wasteId}", wasteHandler.Delete)
				})

				r.Route("/hazardous-wastes", func(r chi.Router) {
					r.Post("/", hazardousHandler.Create)
					r.Get("/", hazardousHandler.List)
					r.Get("/{hazardousWasteId}", hazardousHandler.Get)
					r.Put("/{hazardousWasteId}", hazardousHandler.Update)
					r.Delete("/{hazardousWasteId}", hazardousHandler.Delete)
				})
			})
		})

		// Material catalogs: reads for any authenticated caller, writes
		// admin only. The handlers enforce the same policy; the middleware
		// keeps the admin boundary visible in the routing table.
		r.Route("/building-types", func(r chi.Router) {
			r.Get("/", catalogHandler.ListBuildingTypes)
			r.Get("/{buildingTypeId}", catalogHandler.GetBuildingType)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin())
				r.Post("/", catalogHandler.CreateBuildingType)
				r.Put("/{buildingTypeId}", catalogHandler.UpdateBuildingType)
				r.Delete("/{buildingTypeId}", catalogHandler.DeleteBuildingType)
			})
		})

		r.Route("/reusable-materials", func(r chi.Router) {
			r.Get("/", catalogHandler.ListReusableMaterials)
			r.Get("/{reusableMaterialId}", catalogHandler.GetReusableMaterial)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin())
				r.Post("/", catalogHandler.CreateReusableMaterial)
				r.Put("/{reusableMaterialId}", catalogHandler.UpdateReusableMaterial)
				r.Delete("/{reusableMaterialId}", catalogHandler.DeleteReusableMaterial)
			})
		})

		r.Route("/waste-categories", func(r chi.Router) {
			r.Get("/", catalogHandler.ListWasteCategories)
			r.Get("/{wasteCategoryId}", catalogHandler.GetWasteCategory)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin())
				r.Post("/", catalogHandler.CreateWasteCategory)
				r.Put("/{wasteCategoryId}", catalogHandler.UpdateWasteCategory)
				r.Delete("/{wasteCategoryId}", catalogHandler.DeleteWasteCategory)
			})
		})

		r.Route("/waste-materials", func(r chi.Router) {
			r.Get("/", catalogHandler.ListWasteMaterials)
			r.Get("/{wasteMaterialId}", catalogHandler.GetWasteMaterial)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin())
				r.Post("/", catalogHandler.CreateWasteMaterial)
				r.Put("/{wasteMaterialId}", catalogHandler.UpdateWasteMaterial)
				r.Delete("/{wasteMaterialId}", catalogHandler.DeleteWasteMaterial)
			})
		})

		r.Route("/hazardous-materials", func(r chi.Router) {
			r.Get("/", catalogHandler.ListHazardousMaterials)
			r.Get("/{hazardousMaterialId}", catalogHandler.GetHazardousMaterial)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin())
				r.Post("/", catalogHandler.CreateHazardousMaterial)
				r.Put("/{hazardousMaterialId}", catalogHandler.UpdateHazardousMaterial)
				r.Delete("/{hazardousMaterialId}", catalogHandler.DeleteHazardousMaterial)
			})
		})

		r.Route("/waste-specifiers", func(r chi.Router) {
			r.Get("/", catalogHandler.ListWasteSpecifiers)
			r.Get("/{wasteSpecifierId}", catalogHandler.GetWasteSpecifier)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin())
				r.Post("/", catalogHandler.CreateWasteSpecifier)
				r.Put("/{wasteSpecifierId}", catalogHandler.UpdateWasteSpecifier)
				r.Delete("/{wasteSpecifierId}", catalogHandler.DeleteWasteSpecifier)
			})
		})

		r.Route("/waste-usages", func(r chi.Router) {
			r.Get("/", catalogHandler.ListWasteUsages)
			r.Get("/{wasteUsageId}", catalogHandler.GetWasteUsage)

			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireAdmin())
				r.Post("/", catalogHandler.CreateWasteUsage)
				r.Put("/{wasteUsageId}", catalogHandler.UpdateWasteUsage)
				r.Delete("/{wasteUsageId}", catalogHandler.DeleteWasteUsage)
			})
		})
	})

	return r
}

// isHealthPath returns true if the request path is a healthcheck endpoint.
func isHealthPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/") || path == "/metrics"
}

// traceRequests wraps each request in an OpenTelemetry span. With telemetry
// disabled the tracer is a no-op and the middleware adds no overhead.
func traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := telemetry.StartSpan(r.Context(), telemetry.SpanHTTPRequest)
		defer span.End()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		pattern := r.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}
		span.SetAttributes(
			telemetry.HTTPMethod(r.Method),
			telemetry.HTTPRoute(pattern),
			telemetry.HTTPStatus(ww.Status()),
			telemetry.RequestID(middleware.GetReqID(ctx)),
			telemetry.ClientAddr(r.RemoteAddr),
		)
	})
}

// requestLogger is a custom middleware that logs requests using the internal logger.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
//   - Healthcheck and scrape requests are logged at DEBUG level to reduce noise
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lc := logger.NewLogContext(r.Method, r.RemoteAddr).
			WithRequestID(middleware.GetReqID(r.Context()))
		ctx := logger.WithContext(r.Context(), lc)

		logger.DebugCtx(ctx, "API request started", logger.Path(r.URL.Path))

		// Wrap response writer to capture status code
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		args := []any{
			logger.Path(r.URL.Path),
			logger.Status(ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.DurationMs(lc.DurationMs()),
		}

		// Log healthcheck requests at DEBUG to avoid polluting logs in k8s
		if isHealthPath(r.URL.Path) {
			logger.DebugCtx(ctx, "API request completed", args...)
		} else {
			logger.InfoCtx(ctx, "API request completed", args...)
		}
	})
}
