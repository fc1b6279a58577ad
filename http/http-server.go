package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/patowari/tapuze-backend/auth"
	"github.com/patowari/tapuze-backend/classroomsrvc"
	"github.com/patowari/tapuze-backend/evalsrvc"
	"github.com/patowari/tapuze-backend/submsrvc"
	"github.com/patowari/tapuze-backend/usersrvc"
)

type HttpServer struct {
	userSrvc      *usersrvc.UserSrvc
	classroomSrvc *classroomsrvc.ClassroomSrvc
	submSrvc      *submsrvc.SubmissionSrvc
	grader        evalsrvc.Grader
	persister     evalsrvc.RemotePersister // nil when no remote API is configured
	jwtKey        []byte
	router        *chi.Mux
}

func NewHttpServer(
	userSrvc *usersrvc.UserSrvc,
	classroomSrvc *classroomsrvc.ClassroomSrvc,
	submSrvc *submsrvc.SubmissionSrvc,
	grader evalsrvc.Grader,
	persister evalsrvc.RemotePersister,
	jwtKey []byte,
	corsOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("tapuze", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		userSrvc:      userSrvc,
		classroomSrvc: classroomSrvc,
		submSrvc:      submSrvc,
		grader:        grader,
		persister:     persister,
		jwtKey:        jwtKey,
		router:        router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router

	r.Post("/auth/signup", httpserver.authSignup)
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/auth/logout", httpserver.authLogout)

	r.Get("/users/me", httpserver.getActiveUser)
	r.Patch("/users/me", httpserver.updateProfile)

	r.Post("/classrooms", httpserver.createClassroom)
	r.Get("/classrooms", httpserver.listClassrooms)
	r.Get("/classrooms/{classroomId}", httpserver.getClassroom)
	r.Delete("/classrooms/{classroomId}", httpserver.deleteClassroom)
	r.Post("/classrooms/join", httpserver.joinClassroom)

	r.Post("/classrooms/{classroomId}/assignments", httpserver.createAssignment)
	r.Get("/classrooms/{classroomId}/assignments", httpserver.listAssignments)
	r.Get("/assignments/{assignmentId}", httpserver.getAssignment)
	r.Delete("/assignments/{assignmentId}", httpserver.deleteAssignment)

	r.Post("/assignments/{assignmentId}/submissions", httpserver.createSubmission)
	r.Get("/assignments/{assignmentId}/submissions", httpserver.listSubmissions)
	r.Get("/submissions/{submissionId}", httpserver.getSubmission)

	r.Put("/submissions/{submissionId}/evaluation", httpserver.putEvaluation)
	r.Get("/submissions/{submissionId}/evaluation", httpserver.getEvaluation)
	r.Post("/submissions/{submissionId}/ai-evaluation", httpserver.aiEvaluation)
}
