package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/lshigami/exam-portal/config"
	"github.com/lshigami/exam-portal/database"
	_ "github.com/lshigami/exam-portal/docs"
	"github.com/lshigami/exam-portal/internal/auth"
	"github.com/lshigami/exam-portal/internal/controller/authctrl"
	studentctrl "github.com/lshigami/exam-portal/internal/controller/student"
	teacherctrl "github.com/lshigami/exam-portal/internal/controller/teacher"
	"github.com/lshigami/exam-portal/internal/logger"
	"github.com/lshigami/exam-portal/internal/model"
	"github.com/lshigami/exam-portal/internal/repository"
	"github.com/lshigami/exam-portal/internal/service"
)

// @title Exam Portal API
// @version 1.0
// @description Multi-tenant exam portal: teachers author exams and rosters, students take exams once and receive scored results.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewStudentRepository,
			repository.NewTeacherRepository,
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewExamService,
			service.NewRosterService,
			service.NewStudentExamService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			teacherctrl.NewExamController,
			teacherctrl.NewRosterController,
			studentctrl.NewExamController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("http_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	authCtrl *authctrl.AuthController,
	examCtrl *teacherctrl.ExamController,
	rosterCtrl *teacherctrl.RosterController,
	studentExamCtrl *studentctrl.ExamController,
) {
	requireTeacher := auth.RequireTeacher(cfg.JWT.Secret, teachers)
	requireStudent := auth.RequireStudent(cfg.JWT.Secret, students)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.RegisterStudent)
		authGroup.POST("/login", authCtrl.LoginStudent)
		authGroup.POST("/teacher/register", authCtrl.RegisterTeacher)
		authGroup.POST("/teacher/login", authCtrl.LoginTeacher)

		exams := api.Group("/exams", requireTeacher)
		exams.POST("/create", examCtrl.CreateExam)
		exams.GET("/teacher", examCtrl.ListExams)
		exams.GET("/results", examCtrl.ListResults)
		exams.GET("/:examId", examCtrl.GetExamDetails)
		exams.DELETE("/:examId", examCtrl.DeleteExam)

		roster := api.Group("/student")
		roster.POST("/add-by-prn", requireTeacher, rosterCtrl.AddStudentByPRN)
		roster.GET("", requireTeacher, rosterCtrl.ListStudents)
		roster.DELETE("/:id", requireTeacher, rosterCtrl.DeleteStudent)

		studentExams := roster.Group("/exams", requireStudent)
		studentExams.GET("", studentExamCtrl.ListAvailableExams)
		studentExams.GET("/:examId/take", studentExamCtrl.GetExamForTaking)
		studentExams.POST("/:examId/submit", studentExamCtrl.SubmitExam)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam portal server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Teacher{},
		&model.Student{},
		&model.Exam{},
		&model.ExamQuestion{},
		&model.ExamResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
