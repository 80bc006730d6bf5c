package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/techsolutions/treinamentos/internal/auditoria"
	"github.com/techsolutions/treinamentos/internal/auth"
	"github.com/techsolutions/treinamentos/internal/catalogo"
	"github.com/techsolutions/treinamentos/internal/certificado"
	"github.com/techsolutions/treinamentos/internal/config"
	httpmiddleware "github.com/techsolutions/treinamentos/internal/http/middleware"
	"github.com/techsolutions/treinamentos/internal/http/response"
	"github.com/techsolutions/treinamentos/internal/inscricao"
	"github.com/techsolutions/treinamentos/internal/org"
	"github.com/techsolutions/treinamentos/internal/regras"
	"github.com/techsolutions/treinamentos/internal/relatorio"
	"github.com/techsolutions/treinamentos/internal/seq"
)

type apiInfo struct {
	Message string `json:"message"`
	Versao  string `json:"versao"`
}

// NewRouter monta o roteador com todos os módulos da API.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTTL)
	allocator := seq.New(pool)

	auditService := auditoria.NewService(auditoria.NewRepository(pool), allocator)

	orgService := org.NewService(org.NewRepository(pool), allocator, jwtManager, auditService)
	orgHandler := org.NewHandler(orgService)

	catalogoHandler := catalogo.NewHandler(catalogo.NewService(catalogo.NewRepository(pool), allocator))
	inscricaoHandler := inscricao.NewHandler(inscricao.NewService(inscricao.NewRepository(pool), allocator))
	certificadoHandler := certificado.NewHandler(certificado.NewService(certificado.NewRepository(pool), allocator))
	regrasHandler := regras.NewHandler(regras.NewService(regras.NewRepository(pool), allocator))
	relatorioHandler := relatorio.NewHandler(relatorio.NewService(relatorio.NewRepository(pool), redisClient))

	publicLimiter := httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst)
	authLimiter := httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))

	r.Route("/api", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(httpmiddleware.IPRateLimit(publicLimiter))

			public.Get("/", func(w http.ResponseWriter, r *http.Request) {
				response.WriteJSON(w, http.StatusOK, apiInfo{Message: "Sistema de Gestão de Treinamentos NR-31", Versao: "1.0"})
			})
			public.Get("/health", health)
			public.Get("/ready", ready(pool))

			org.MountAuth(public, orgHandler)
		})

		api.Group(func(private chi.Router) {
			private.Use(httpmiddleware.Auth(jwtManager))
			private.Use(httpmiddleware.UserRateLimit(authLimiter))

			org.Mount(private, orgHandler)
			catalogo.Mount(private, catalogoHandler)
			inscricao.Mount(private, inscricaoHandler)
			certificado.Mount(private, certificadoHandler)
			regras.Mount(private, regrasHandler)
			relatorio.Mount(private, relatorioHandler)
		})
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	response.WriteMessage(w, http.StatusOK, "ok")
}

// ready confirma que o banco responde antes de aceitar tráfego.
func ready(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			response.WriteError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "banco indisponível", nil)
			return
		}
		response.WriteMessage(w, http.StatusOK, "ready")
	}
}
