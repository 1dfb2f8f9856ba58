package routes

import (
	"net/http"
	"time"

	"homecare-tracker/internal/handlers"
	"homecare-tracker/internal/middleware"
	"homecare-tracker/internal/models"
	"homecare-tracker/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options adalah dependency yang dibutuhkan route table selain handler.
type Options struct {
	Tokens      *utils.TokenService
	Accounts    middleware.AccountFinder
	Logger      zerolog.Logger
	CORSOrigins []string
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler, opts Options) {
	utils.RegisterJSONTagNames()

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logger(opts.Logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, http.StatusOK, "Server OK!")
	})

	authRequired := middleware.AuthMiddleware(opts.Tokens, opts.Accounts, opts.Logger)

	api := r.Group("/api")
	{
		// 1. PUBLIC ROUTES
		account := api.Group("/account")
		{
			account.POST("/register/client", h.RegisterClient)
			account.POST("/signin", h.SignIn)
			account.POST("/generatetoken", h.GenerateToken)
		}

		// 2. PROTECTED ROUTES (harus bawa token)
		protectedAccount := api.Group("/account", authRequired)
		{
			protectedAccount.POST("/register/healthworker", h.RegisterHealthWorker)
			protectedAccount.POST("/register/admin", middleware.RequireRole(models.RoleAdmin), h.RegisterAdmin)
			protectedAccount.POST("/signout", h.SignOut)
			protectedAccount.GET("/user", h.GetCurrentUser)
			protectedAccount.GET("/currentUser/:email", h.GetUserByEmail)
			protectedAccount.PUT("/edit/:email", h.EditClientAddress)
			protectedAccount.PUT("/addHealthworker/:email", h.SetClientHealthWorker)
		}

		clients := api.Group("/Clients", authRequired)
		{
			clients.GET("", h.ListClients)
			clients.POST("", h.CreateClient)
			clients.GET("/connected/:email", h.ConnectedClients)
			clients.GET("/:id", h.GetClient)
			clients.PUT("/:id", h.UpdateClient)
			clients.DELETE("/:id", h.DeleteClient)
		}

		workers := api.Group("/HealthWorkers", authRequired)
		{
			workers.GET("", h.ListHealthWorkers)
			workers.POST("", h.CreateHealthWorker)
			workers.PUT("/edit/:id", h.EditHealthWorker)
			workers.GET("/:id", h.GetHealthWorker)
			workers.PUT("/:id", h.UpdateHealthWorker)
			workers.DELETE("/:id", h.DeleteHealthWorker)
		}

		appointments := api.Group("/Appointments", authRequired)
		{
			appointments.GET("", h.ListAppointments)
			appointments.POST("", h.CreateAppointment)
			appointments.GET("/:id", h.GetAppointment)
			appointments.PUT("/:id", h.UpdateAppointment)
			appointments.DELETE("/:id", h.DeleteAppointment)
		}

		benches := api.Group("/Benches", authRequired)
		{
			benches.GET("", h.ListBenches)
			benches.POST("", h.CreateBench)
			benches.GET("/:id", h.GetBench)
			benches.PUT("/:id", h.UpdateBench)
			benches.DELETE("/:id", h.DeleteBench)
		}

		statuses := api.Group("/AppointmentStatus", authRequired)
		{
			statuses.GET("", h.ListAppointmentStatuses)
			statuses.GET("/:id", h.GetAppointmentStatus)
		}

		questionnaires := api.Group("/Questionnaires", authRequired)
		{
			questionnaires.GET("", h.ListQuestionnaires)
			questionnaires.POST("", h.CreateQuestionnaire)
			questionnaires.GET("/:id", h.GetQuestionnaire)
			questionnaires.PUT("/:id", h.UpdateQuestionnaire)
			questionnaires.DELETE("/:id", h.DeleteQuestionnaire)
		}

		questions := api.Group("/Questions", authRequired)
		{
			questions.GET("", h.ListQuestions)
			questions.POST("", h.CreateQuestion)
			questions.GET("/:id", h.GetQuestion)
			questions.PUT("/:id", h.UpdateQuestion)
			questions.DELETE("/:id", h.DeleteQuestion)
		}

		answers := api.Group("/Answers", authRequired)
		{
			answers.GET("", h.ListAnswers)
			answers.POST("", h.CreateAnswers)
			answers.GET("/:id", h.GetAnswer)
			answers.DELETE("/:id", h.DeleteAnswer)
		}
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
