package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/community-aid/helpboard-api/logmodule"
	"github.com/community-aid/helpboard-api/schema"
	"github.com/community-aid/helpboard-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.CommunityCore

	// JWT signing secret
	jwtSecret []byte
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, jwtSecret []byte) *Server {
	return &Server{
		store:     store.NewCommunityStore(ormDB),
		jwtSecret: jwtSecret,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	authRoute := r.Group("/auth")
	authRoute.Use(logmodule.Ginrus("Auth"))
	{
		authRoute.POST("/signin", s.signin)
		authRoute.POST("/register", s.register)
	}

	mainRoute := r.Group("/main")
	mainRoute.Use(logmodule.Ginrus("Main"))
	{
		mainRoute.GET("/health-check", s.healthCheck)
	}

	scheduleRoute := r.Group("/Schedule")
	scheduleRoute.Use(logmodule.Ginrus("API"))
	scheduleRoute.Use(s.authMiddleware())
	scheduleRoute.Use(s.recognizeUserMiddleware())
	{
		scheduleRoute.GET("/getAllSchedule", s.getAllSchedule)
		scheduleRoute.GET("/getById/:id", s.getScheduleByID)
	}

	needyRoute := r.Group("/needy")
	needyRoute.Use(logmodule.Ginrus("API"))
	needyRoute.Use(s.authMiddleware())
	needyRoute.Use(s.recognizeUserMiddleware())
	needyRoute.Use(s.requireRole(schema.RoleNeedy, schema.RoleAdmin))
	{
		needyRoute.POST("/createSchedule", s.createSchedule)
		needyRoute.DELETE("/deleteSchedule/:id", s.deleteSchedule)
		needyRoute.PATCH("/setStatus", s.setStatus)
		needyRoute.PATCH("/setRating", s.setRating)
	}

	helperRoute := r.Group("/helper")
	helperRoute.Use(logmodule.Ginrus("API"))
	helperRoute.Use(s.authMiddleware())
	helperRoute.Use(s.recognizeUserMiddleware())
	helperRoute.Use(s.requireRole(schema.RoleHelper))
	{
		helperRoute.PATCH("/respond/:id", s.respond)
		helperRoute.PATCH("/cancelResponse/:id", s.cancelResponse)
	}

	infoRoute := r.Group("/information")
	infoRoute.Use(logmodule.Ginrus("API"))
	infoRoute.Use(s.authMiddleware())
	infoRoute.Use(s.recognizeUserMiddleware())
	{
		infoRoute.GET("/my", s.myInformation)
		infoRoute.GET("/user/:id", s.informationByUser)
		infoRoute.POST("/create", s.createInformation)
		infoRoute.PUT("/update", s.updateInformation)
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthCheck(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.String(http.StatusOK, "OK")
}

// currentUser returns the account recognized by the middleware chain.
func currentUser(c *gin.Context) (*schema.User, bool) {
	u, ok := c.MustGet("user").(*schema.User)
	return u, ok
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		if err != nil {
			c.Error(err)
		}
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
