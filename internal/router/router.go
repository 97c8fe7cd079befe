package router

import (
	"log/slog"
	"net/http"
	"time"

	"anatomy-explorer-backend/internal/config"
	"anatomy-explorer-backend/internal/handlers"
	"anatomy-explorer-backend/internal/middleware"
	"anatomy-explorer-backend/internal/password"
	"anatomy-explorer-backend/internal/services"
	"anatomy-explorer-backend/internal/session"

	_ "anatomy-explorer-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Options struct {
	Config         *config.Config
	DB             *gorm.DB
	Sealer         *session.Sealer
	PasswordParams password.Params
	Logger         *slog.Logger
}

func New(opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	origins, err := cfg.AllowedOrigins()
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(opts.DB, opts.PasswordParams)
	labelSetService := services.NewLabelSetService(opts.DB)
	quizService := services.NewQuizService(opts.DB)
	membershipService := services.NewMembershipService(opts.DB)
	assetStore := services.NewAssetStore(opts.DB, cfg.ModelsDir)

	cookies := session.NewCookies(opts.Sealer, cfg.CookieSecure)
	guard := middleware.NewGuard(cookies, authService)

	userHandler := handlers.NewUserHandler(authService, cookies, guard)
	labelSetHandler := handlers.NewLabelSetHandler(labelSetService)
	quizHandler := handlers.NewQuizHandler(quizService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	modelStorageHandler := handlers.NewModelStorageHandler(assetStore)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, re := range origins {
				if re.MatchString(origin) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	{
		users.POST("/login", userHandler.Login)
		users.POST("/logout", userHandler.Logout)
		users.POST("/refresh", userHandler.Refresh)
		users.PUT("/create", guard.Admin(), userHandler.Create)
		users.GET("/isadmin", guard.AnyUser(), userHandler.IsAdmin)
		users.GET("/ismoderator", guard.AnyUser(), userHandler.IsModerator)
		users.GET("/me", guard.AnyUser(), userHandler.Me)

		member := users.Group("", guard.AnyUser())
		member.GET("/labelsets", membershipHandler.ListLabelSets)
		member.PUT("/labelsets/:uuid", membershipHandler.AddLabelSet)
		member.DELETE("/labelsets/:uuid", membershipHandler.RemoveLabelSet)
		member.GET("/quizzes", membershipHandler.ListQuizzes)
		member.PUT("/quizzes/:uuid", membershipHandler.AddQuiz)
		member.DELETE("/quizzes/:uuid", membershipHandler.RemoveQuiz)
	}

	labels := r.Group("/labels")
	{
		labels.POST("/", labelSetHandler.Create)
		labels.PUT("/:uuid", labelSetHandler.Put)
		labels.GET("/:id", labelSetHandler.Get)
		labels.GET("/uuid/:uuid", labelSetHandler.GetByUUID)
		labels.DELETE("/:uuid", labelSetHandler.Delete)
	}

	quiz := r.Group("/quiz")
	{
		quiz.POST("/", guard.Moderator(), quizHandler.CreateQuiz)
		quiz.PUT("/:uuid", guard.Moderator(), quizHandler.PutQuiz)
		quiz.DELETE("/:uuid", guard.Moderator(), quizHandler.DeleteQuiz)
		quiz.GET("/:id", guard.AnyUser(), quizHandler.GetQuiz)
		quiz.GET("/uuid/:uuid", guard.AnyUser(), quizHandler.GetQuizByUUID)
	}

	modelStorage := r.Group("/modelstorage")
	{
		modelStorage.PUT("/upload/:filename", guard.Admin(), modelStorageHandler.Upload)
		modelStorage.PUT("/upload/mtl/:id/:filename", guard.Admin(), modelStorageHandler.UploadMaterial)
		modelStorage.PUT("/upload/tex/:id/:filename", guard.Admin(), modelStorageHandler.UploadTexture)
		modelStorage.GET("/", guard.AnyUser(), modelStorageHandler.List)
		modelStorage.GET("/lookup/:id", guard.AnyUser(), modelStorageHandler.Lookup)
	}

	r.GET("/models/", modelStorageHandler.Files)
	r.GET("/models/:filename", modelStorageHandler.Serve)

	if cfg.SiteDir != "" {
		site := http.FileServer(http.Dir(cfg.SiteDir))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
				c.Status(http.StatusNotFound)
				return
			}
			site.ServeHTTP(c.Writer, c.Request)
		})
		log.Info("serving static site", "dir", cfg.SiteDir)
	}

	return r, nil
}
