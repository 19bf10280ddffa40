package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/config"
	"github.com/prismworks/timesheet-console/internal/handlers"
	"github.com/prismworks/timesheet-console/internal/logger"
	"github.com/prismworks/timesheet-console/internal/middleware"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/timesheet"
	"github.com/prismworks/timesheet-console/web"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	zlog := logger.New(cfg.LogLevel)
	defer zlog.Sync()

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))

	// Setup session middleware. Redis keeps sessions across restarts; the
	// cookie store needs no extra infrastructure.
	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	r.Use(sessions.Sessions(session.CookieName, store))

	r.SetHTMLTemplate(web.Templates())

	api := backend.NewClient(cfg.APIBaseURL)
	drafts := timesheet.NewStore()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(api, drafts, zlog)
	dashboardHandler := handlers.NewDashboardHandler()
	resourceHandler := handlers.NewResourceHandler(api, cfg.PageSize, zlog)
	customerHandler := handlers.NewCustomerHandler(api, cfg.PageSize, zlog)
	projectHandler := handlers.NewProjectHandler(api, cfg.PageSize, zlog)
	taskHandler := handlers.NewTaskHandler(api, cfg.PageSize, zlog)
	assignmentHandler := handlers.NewAssignmentHandler(api, cfg.PageSize, zlog)
	timesheetHandler := handlers.NewTimesheetHandler(api, drafts, zlog)
	dataHandler := handlers.NewDataHandler(api, zlog)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Timesheet console is running",
		})
	})

	// Public routes
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/not-authorized", authHandler.NotAuthorized)

	// Everything under /dashboard requires a live session
	dash := r.Group("/dashboard")
	dash.Use(middleware.RequireSession())
	{
		dash.GET("", dashboardHandler.Home)

		// Admin screens
		admin := dash.Group("")
		admin.Use(middleware.RequireRoles(models.RoleNameAdmin))
		{
			admin.GET("/resource", resourceHandler.List)
			admin.GET("/resource/add", resourceHandler.ShowForm)
			admin.POST("/resource/add", resourceHandler.Submit)
			admin.GET("/resource/update/:id", resourceHandler.ShowForm)
			admin.POST("/resource/update/:id", resourceHandler.Submit)

			admin.GET("/customer", customerHandler.List)
			admin.GET("/customer/add", customerHandler.ShowForm)
			admin.POST("/customer/add", customerHandler.Submit)
			admin.GET("/customer/update/:id", customerHandler.ShowForm)
			admin.POST("/customer/update/:id", customerHandler.Submit)

			admin.GET("/project", projectHandler.List)
			admin.GET("/project/add", projectHandler.ShowForm)
			admin.POST("/project/add", projectHandler.Submit)
			admin.GET("/project/update/:id", projectHandler.ShowForm)
			admin.POST("/project/update/:id", projectHandler.Submit)

			admin.GET("/task", taskHandler.List)
			admin.GET("/task/add", taskHandler.ShowForm)
			admin.POST("/task/add", taskHandler.Submit)
			admin.GET("/task/update/:id", taskHandler.ShowForm)
			admin.POST("/task/update/:id", taskHandler.Submit)

			admin.GET("/assignment", assignmentHandler.List)
			admin.GET("/assignment/add", assignmentHandler.ShowForm)
			admin.POST("/assignment/add", assignmentHandler.Submit)
			admin.GET("/assignment/update/:id", assignmentHandler.ShowForm)
			admin.POST("/assignment/update/:id", assignmentHandler.Submit)
		}

		// Timesheet screens (any signed-in role)
		dash.GET("/timesheet", timesheetHandler.List)
		dash.GET("/timesheet/new", timesheetHandler.New)
		dash.GET("/timesheet/:id", timesheetHandler.Open)

		// Grid editor XHR endpoints
		grid := dash.Group("/grid")
		{
			grid.POST("/week", timesheetHandler.SelectWeek)
			grid.POST("/rows", timesheetHandler.AddRow)
			grid.POST("/rows/project", timesheetHandler.SelectProject)
			grid.POST("/rows/task", timesheetHandler.SelectTask)
			grid.GET("/cell", timesheetHandler.GetCell)
			grid.POST("/cell", timesheetHandler.EditCell)
			grid.POST("/save", timesheetHandler.Save)
		}

		// Dependent-dropdown data endpoints
		data := dash.Group("/data")
		{
			data.GET("/projects", dataHandler.ProjectsByCustomer)
			data.GET("/tasks", dataHandler.TasksByProject)
		}
	}

	// Unknown paths land on the login screen, which forwards signed-in
	// users to their dashboard.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(302, middleware.LoginPath)
	})

	zlog.Infow("Console starting", "addr", cfg.ListenAddr, "api", cfg.APIBaseURL)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	if cfg.SessionStore == "redis" {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		rs, err := redisStore.NewStore(
			10,
			"tcp",
			redisAddr,
			"",
			"",
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, err
		}
		store = rs
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	return store, nil
}
