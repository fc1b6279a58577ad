package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/patowari/tapuze-backend/classroomsrvc"
	"github.com/patowari/tapuze-backend/conf"
	"github.com/patowari/tapuze-backend/evalsrvc"
	"github.com/patowari/tapuze-backend/http"
	"github.com/patowari/tapuze-backend/submsrvc"
	"github.com/patowari/tapuze-backend/usersrvc"
)

func main() {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	cfg, err := conf.Read(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to read config", "error", err)
		os.Exit(1)
	}
	if cfg.JwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	userSrvc := usersrvc.NewUserSrvc()
	classroomSrvc := classroomsrvc.NewClassroomSrvc()
	submSrvc := submsrvc.NewSubmissionSrvc(classroomSrvc)
	classroomSrvc.SetSubmissionCascader(submSrvc)

	grader := evalsrvc.NewMockAIGrader()

	var persister evalsrvc.RemotePersister
	if cfg.EvalApiUrl != "" {
		persister = evalsrvc.NewHTTPPersister(cfg.EvalApiUrl)
	}

	httpServer := http.NewHttpServer(
		userSrvc, classroomSrvc, submSrvc,
		grader, persister,
		[]byte(cfg.JwtKey), cfg.CorsOrigins,
	)

	log.Printf("Starting server on %s", cfg.HttpAddress)
	err = httpServer.Start(cfg.HttpAddress)
	log.Printf("Server stopped with error: %v", err)
}
