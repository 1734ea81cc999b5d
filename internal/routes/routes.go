package routes

import (
	"github.com/TriCode435/Wellnest-Smart-Health/internal/config"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/handlers"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/middleware"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/services"
	"github.com/TriCode435/Wellnest-Smart-Health/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Services holds every workflow built on one database pool.
type Services struct {
	Accounts     *repository.AccountRepository
	Lookup       *services.ProfileLookup
	Auth         *services.AuthService
	Users        *services.UserService
	Trainers     *services.TrainerService
	Admin        *services.AdminService
	WorkoutPlans *services.WorkoutPlanService
}

func NewServices(cfg *config.Config, db *pgxpool.Pool) *Services {
	accountRepo := repository.NewAccountRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)
	trainerProfileRepo := repository.NewTrainerProfileRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	mealRepo := repository.NewMealRepository(db)
	sleepMoodRepo := repository.NewSleepMoodRepository(db)
	workoutPlanRepo := repository.NewWorkoutPlanRepository(db)

	lookup := services.NewProfileLookup(accountRepo, userProfileRepo, trainerProfileRepo)
	assignmentService := services.NewAssignmentService(lookup, assignmentRepo)

	return &Services{
		Accounts: accountRepo,
		Lookup:   lookup,
		Auth: services.NewAuthService(
			accountRepo,
			repository.NewRegistrationRepository(db),
			utils.BcryptHasher{},
			utils.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL),
		),
		Users:        services.NewUserService(lookup, userProfileRepo, workoutRepo, mealRepo, sleepMoodRepo, assignmentService),
		Trainers:     services.NewTrainerService(lookup, trainerProfileRepo, assignmentService, workoutRepo, mealRepo),
		Admin:        services.NewAdminService(accountRepo, assignmentService),
		WorkoutPlans: services.NewWorkoutPlanService(workoutPlanRepo),
	}
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, svc *Services) {
	authHandler := handlers.NewAuthHandler(svc.Auth, svc.Lookup)
	userHandler := handlers.NewUserHandler(svc.Users)
	trainerHandler := handlers.NewTrainerHandler(svc.Trainers)
	adminHandler := handlers.NewAdminHandler(svc.Admin)
	workoutPlanHandler := handlers.NewWorkoutPlanHandler(svc.WorkoutPlans)

	authRequired := middleware.AuthRequired(cfg.JWTSecret)

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authRequired, authHandler.Me)

	api := app.Group("/api", authRequired)

	user := api.Group("/user", middleware.RequireRoles(models.RoleUser))
	user.Get("/profile", userHandler.GetProfile)
	user.Put("/profile", userHandler.UpdateProfile)
	user.Get("/workouts", userHandler.Workouts)
	user.Post("/workouts/:id/log", userHandler.LogWorkout)
	user.Get("/meals", userHandler.Meals)
	user.Post("/meals", userHandler.LogMeal)
	user.Get("/sleep-mood", userHandler.SleepMood)
	user.Post("/sleep-mood", userHandler.LogSleepMood)
	user.Get("/assigned-trainer", userHandler.AssignedTrainer)

	trainer := api.Group("/trainer", middleware.RequireRoles(models.RoleTrainer))
	trainer.Get("/profile", trainerHandler.GetProfile)
	trainer.Put("/profile", trainerHandler.UpdateProfile)
	trainer.Get("/assigned-users", trainerHandler.AssignedUsers)
	trainer.Get("/users/:userId/profile", trainerHandler.AthleteProfile)
	trainer.Post("/users/:userId/assign-workout", trainerHandler.AssignWorkout)
	trainer.Post("/users/:userId/assign-meal", trainerHandler.AssignMeal)

	admin := api.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/users", adminHandler.ListAccounts)
	admin.Delete("/users/:id", adminHandler.DeleteAccount)
	admin.Post("/assign", adminHandler.Assign)
	admin.Get("/assignments", adminHandler.ListAssignments)

	plans := api.Group("/workout-plans")
	plans.Get("", workoutPlanHandler.List)
	plans.Post("", middleware.RequireRoles(models.RoleTrainer), workoutPlanHandler.Create)
}
