package main

import (
	"fmt"
	"net/http"

	"github.com/punchpoint/punchpoint-backend-go/internal/config"
	appHTTP "github.com/punchpoint/punchpoint-backend-go/internal/handler/http"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/cron"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/database"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/jwt"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/orgcache"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/sse"
	"github.com/punchpoint/punchpoint-backend-go/internal/repository/postgresql"
	attendanceService "github.com/punchpoint/punchpoint-backend-go/internal/service/attendance"
	departmentService "github.com/punchpoint/punchpoint-backend-go/internal/service/department"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	eventRepo := postgresql.NewEventRepository(db)
	adherenceRepo := postgresql.NewAdherenceRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	hub := sse.NewHub()
	orgCache := orgcache.New(cfg.Cache.OrgConfigTTL, orgcache.NewRepositoryFetch(companyRepo, departmentRepo))

	attendanceSvc := attendanceService.NewAttendanceService(txManager, eventRepo, adherenceRepo, departmentRepo, orgCache, hub)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	liveHandler := appHTTP.NewLiveHandler(attendanceSvc, JWTService, hub)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		liveHandler,
		departmentHandler,
	)

	// Fallback refresh keeps dashboards honest when a scan notification is
	// missed or a session reconnects mid-day.
	scheduler := cron.NewScheduler()
	refreshJobs := cron.NewRefreshJobs(hub, eventRepo)
	refreshJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
