package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CharacterCreator_Go/internal/character"
	"github.com/osse101/CharacterCreator_Go/internal/database"
	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/handler"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/metrics"
	"github.com/osse101/CharacterCreator_Go/internal/rpgclass"
	"github.com/osse101/CharacterCreator_Go/internal/session"
	"github.com/osse101/CharacterCreator_Go/internal/skill"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

// Config holds the transport settings of the HTTP server
type Config struct {
	Port           int
	TrustedProxies []string
	MaxBodyBytes   int64

	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSAllowCredentials bool

	CSRFCookieName string
	CSRFHeaderName string
	CookieSecure   bool
}

// Services are the collaborators the routes dispatch to
type Services struct {
	DB         database.Pool
	Users      user.Service
	Classes    rpgclass.Service
	Skills     skill.Service
	Characters character.Service
	Sessions   *session.Manager
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()
	csrf := NewCSRF(cfg.CSRFCookieName, cfg.CSRFHeaderName, cfg.CookieSecure)

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware(csrf.HeaderName()))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   cfg.CORSAllowedMethods,
		AllowedHeaders:   cfg.CORSAllowedHeaders,
		AllowCredentials: cfg.CORSAllowCredentials,
		MaxAge:           CORSMaxAge,
	}))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(csrf.Middleware)

	authenticated := RequireAuth(svc.Sessions)
	admin := RequireRole(domain.RoleAdmin)
	characterOwner := RequireCharacterOwner(svc.Characters, "id")
	failedLogins := FailedLoginMiddleware(cfg.TrustedProxies, detector)

	// Operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Authentication
	login := handler.HandleLogin(svc.Users, svc.Sessions)
	logout := handler.HandleLogout(svc.Sessions)
	r.Get("/csrf-token", handler.HandleCSRFToken(csrf))
	r.With(failedLogins).Post("/login", login)
	r.Post("/logout", logout)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.HandleRegister(svc.Users))
		r.With(failedLogins).Post("/login", login)
		r.Post("/logout", logout)
		r.With(authenticated).Get("/me", handler.HandleMe(svc.Users))
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", handler.HandleListUsers(svc.Users))
		r.With(admin).Post("/", handler.HandleCreateUser(svc.Users))
		r.Get("/email/{email}", handler.HandleGetUserByEmail(svc.Users))
		r.Get("/{id}/characters", handler.HandleListCharactersByUser(svc.Characters, "id"))
		r.With(RequireSelfOrAdmin("id")).Put("/{id}", handler.HandleUpdateUser(svc.Users))
		r.With(RequireSelfOrAdmin("id")).Delete("/{id}", handler.HandleDeleteUser(svc.Users))
	})

	r.Route("/classes", func(r chi.Router) {
		r.Get("/", handler.HandleListClasses(svc.Classes))
		r.Get("/{id}", handler.HandleGetClass(svc.Classes))
		r.Get("/name/{name}", handler.HandleGetClassByName(svc.Classes))
		r.Get("/name/{name}/starting-items", handler.HandleGetStartingItems(svc.Classes))

		r.Group(func(r chi.Router) {
			r.Use(authenticated, admin)
			r.Post("/", handler.HandleCreateClass(svc.Classes))
			r.Put("/", handler.HandleBatchUpdateClasses(svc.Classes))
			r.Put("/{id}", handler.HandleUpdateClass(svc.Classes))
			r.Delete("/{id}", handler.HandleDeleteClass(svc.Classes))
			r.Post("/{id}/starting-items", handler.HandleAddStartingItem(svc.Classes))
		})
	})

	r.Route("/skills", func(r chi.Router) {
		r.Get("/", handler.HandleListSkills(svc.Skills))
		r.Get("/{id}", handler.HandleGetSkill(svc.Skills))
		r.With(authenticated, admin).Post("/", handler.HandleCreateSkill(svc.Skills))
		r.With(authenticated, admin).Delete("/{id}", handler.HandleDeleteSkill(svc.Skills))
		r.With(authenticated, characterOwner).Post("/{id}/add/{skillId}", handler.HandleAddSkillToCharacter(svc.Skills))
	})

	r.Route("/characters", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", handler.HandleListCharacters(svc.Characters))
		r.Post("/", handler.HandleCreateCharacter(svc.Characters))
		r.Get("/search", handler.HandleSearchCharacters(svc.Characters))
		r.Get("/user/{userId}", handler.HandleListCharactersByUser(svc.Characters, "userId"))
		r.Get("/{id}", handler.HandleGetCharacter(svc.Characters))
		r.Get("/{id}/inventory", handler.HandleGetInventory(svc.Characters))
		r.With(characterOwner).Put("/{id}", handler.HandleUpdateCharacter(svc.Characters))
		r.With(characterOwner).Delete("/{id}", handler.HandleDeleteCharacter(svc.Characters))
		r.With(characterOwner).Post("/{id}/inventory", handler.HandleAddInventoryItem(svc.Characters))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticated, admin)
		r.Get("/cache/stats", handler.HandleGetCacheStats(svc.Users))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func quietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware tags each request with an id and logs start and end.
// Credentials and the session and CSRF tokens are redacted from the header dump.
func loggingMiddleware(csrfHeader string) func(http.Handler) http.Handler {
	redacted := []string{HeaderAuthorization, HeaderCookie, csrfHeader}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			if quietPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
			r = r.WithContext(ctx)
			log := logger.FromContext(ctx)

			log.Info(LogMsgRequestStarted,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"content_length", r.ContentLength,
				"user_agent", r.UserAgent())

			sanitizedHeaders := make(http.Header, len(r.Header))
			for k, v := range r.Header {
				sanitizedHeaders[k] = v
				for _, name := range redacted {
					if strings.EqualFold(k, name) {
						sanitizedHeaders[k] = []string{RedactedValue}
						break
					}
				}
			}
			log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			log.Info(LogMsgRequestCompleted,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.statusCode,
				"duration_ms", duration.Milliseconds())
		})
	}
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
