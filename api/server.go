package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RichardKnop/machinery/v1"

	"github.com/communityaid/communityaid-api/chat"
	"github.com/communityaid/communityaid-api/external/cadence"
	"github.com/communityaid/communityaid-api/logmodule"
	"github.com/communityaid/communityaid-api/schema"
	"github.com/communityaid/communityaid-api/store"
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
	store      store.CommunityCore
	mongoStore store.MongoStore

	// Chat coordinator
	chatHub *chat.Hub

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server

	// follow-up workflow client, optional
	followup *cadence.CadenceClient
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	followupClient *cadence.CadenceClient,
	jwtKey *rsa.PrivateKey) *Server {

	communityStore := store.NewCommunityStore(ormDB)
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         communityStore,
		mongoStore:    mongoStore,
		chatHub:       chat.NewHub(communityStore, mongoStore),
		jwtPrivateKey: jwtKey,
		background:    backgroundEnqueuer,
		followup:      followupClient,
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

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	resetRoute := apiRoute.Group("/password-reset")
	{
		resetRoute.POST("/send-otp", s.sendOTP)
		resetRoute.POST("/verify-otp", s.verifyOTP)
		resetRoute.POST("/reset-password", s.resetPassword)
	}

	// api routes below require a bearer token and a known, unblocked user
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeUserMiddleware())

	apiRoute.PUT("/auth/profile", s.updateProfile)

	helpRoute := apiRoute.Group("/help-requests")
	{
		helpRoute.POST("", s.requireRole(schema.UserRoleResident), s.createHelpRequest)
		helpRoute.GET("", s.requireRole(schema.UserRoleAdmin), s.listHelpRequests)
		helpRoute.GET("/available", s.requireRole(schema.UserRoleHelper), s.listAvailableRequests)
		helpRoute.GET("/my-requests", s.listMyRequests)
		helpRoute.PUT("/:requestID/accept", s.requireRole(schema.UserRoleHelper), s.acceptHelpRequest)
		helpRoute.PUT("/:requestID/decline", s.requireRole(schema.UserRoleHelper), s.declineHelpRequest)
		helpRoute.PUT("/:requestID/status", s.requireRole(schema.UserRoleHelper), s.advanceRequestStatus)
	}

	chatRoute := apiRoute.Group("/chat")
	{
		chatRoute.GET("/:requestID/info", s.chatInfo)
		chatRoute.GET("/:requestID/messages", s.chatMessages)
	}

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.POST("", s.submitReport)
		reportRoute.GET("/my-reports", s.myReports)
		reportRoute.GET("/all", s.requireRole(schema.UserRoleAdmin), s.allReports)
		reportRoute.GET("/stats", s.requireRole(schema.UserRoleAdmin), s.reportStats)
		reportRoute.PUT("/:reportID/status", s.requireRole(schema.UserRoleAdmin), s.updateReportStatus)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.requireRole(schema.UserRoleAdmin))
	{
		adminRoute.GET("/requests/pending", s.pendingRequests)
		adminRoute.PUT("/requests/:requestID/approve", s.approveRequest)
		adminRoute.PUT("/requests/:requestID/reject", s.rejectRequest)
		adminRoute.GET("/users", s.listUsers)
		adminRoute.PUT("/users/:userID/block", s.blockUser)
		adminRoute.PUT("/users/:userID/unblock", s.unblockUser)
		adminRoute.GET("/analytics", s.analytics)
	}

	// chat socket entry; authenticates the connection with the same
	// bearer token, accepted from the query string for browser clients
	r.GET("/ws",
		logmodule.Ginrus("Socket"),
		s.authMiddleware(),
		s.recognizeUserMiddleware(),
		s.chatSocket)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/remind-requests", s.adminRemindRequests)
	}

	r.GET("/healthz", s.healthz)

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

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
