package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vietanh2810/medicamp-api/docs"
	v1 "github.com/vietanh2810/medicamp-api/internal/api/handler/v1"
	"github.com/vietanh2810/medicamp-api/internal/api/middleware"
	"github.com/vietanh2810/medicamp-api/internal/config"
	"github.com/vietanh2810/medicamp-api/internal/pkg/imagegen"
	"github.com/vietanh2810/medicamp-api/internal/pkg/payment"
	"github.com/vietanh2810/medicamp-api/internal/repository"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
	"github.com/vietanh2810/medicamp-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth        *v1.AuthHandler
	user        *v1.UserHandler
	camp        *v1.CampHandler
	participant *v1.ParticipantHandler
	payment     *v1.PaymentHandler
	feedback    *v1.FeedbackHandler
	image       *v1.ImageHandler
	stats       *v1.StatsHandler
}

type repositories struct {
	users        *repository.UserRepository
	camps        *repository.CampRepository
	participants *repository.ParticipantRepository
	payments     *repository.PaymentRepository
	feedbacks    *repository.FeedbackRepository
	images       *repository.ImageRepository
}

func NewServer(conf *config.AppConfig, db *mongo.Database) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	repos := initRepositories(db)
	userSvc := service.NewUserService(repos.users)
	h := handlers{
		auth:        v1.NewAuthHandler(conf.API, service.NewAuthService(conf.API.JWTSigningKey)),
		user:        v1.NewUserHandler(userSvc),
		camp:        v1.NewCampHandler(service.NewCampService(repos.camps)),
		participant: v1.NewParticipantHandler(service.NewParticipantService(repos.participants, repos.camps, repos.users)),
		payment:     s.initPaymentHandler(repos),
		feedback:    v1.NewFeedbackHandler(service.NewFeedbackService(repos.feedbacks)),
		image:       s.initImageHandler(repos),
		stats:       v1.NewStatsHandler(service.NewStatsService(repos.users, repos.camps, repos.payments, repos.participants)),
	}
	s.MountHandlers(h, middleware.NewRoleGuard(userSvc))

	return s
}

func initRepositories(db *mongo.Database) repositories {
	return repositories{
		users:        repository.NewUserRepository(dao.NewUserDAO(db)),
		camps:        repository.NewCampRepository(dao.NewCampDAO(db)),
		participants: repository.NewParticipantRepository(dao.NewParticipantDAO(db)),
		payments:     repository.NewPaymentRepository(dao.NewPaymentDAO(db)),
		feedbacks:    repository.NewFeedbackRepository(dao.NewFeedbackDAO(db)),
		images:       repository.NewImageRepository(dao.NewImageDAO(db)),
	}
}

func (s *Server) initPaymentHandler(repos repositories) *v1.PaymentHandler {
	conf := s.Config.Stripe
	processor := payment.NewStripeProcessor(conf.SecretKey, conf.Currency, conf.Timeout)
	svc := service.NewPaymentService(repos.payments, repos.participants, processor)

	return v1.NewPaymentHandler(svc)
}

func (s *Server) initImageHandler(repos repositories) *v1.ImageHandler {
	conf := s.Config.ImageGen
	generator := imagegen.NewGenerator(
		imagegen.NewClipDropClient(conf.ClipDropAPIKey, conf.ClipDropURL, conf.Timeout),
		imagegen.NewImgBBClient(conf.ImgBBAPIKey, conf.ImgBBURL, conf.Timeout),
	)
	svc := service.NewImageService(repos.images, generator)

	return v1.NewImageHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Timeout(s.Config.API.RequestTimeout))
}

func (s *Server) MountHandlers(h handlers, guard *middleware.RoleGuard) {
	authn := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Config.API.CookieTransport).VerifyJWT()
	organizer := guard.RequireOrganizer()
	self := middleware.RequireSelf("email")

	r := s.Router

	r.POST("/jwt-access", h.auth.HandleJWTAccess)
	r.POST("/logout", h.auth.HandleLogout)

	r.POST("/users", h.user.HandleCreateUser)
	r.GET("/users", authn, organizer, h.user.HandleListUsers)
	r.GET("/user/organizer/:email", authn, self, h.user.HandleIsOrganizer)
	r.GET("/user/participant/:email", authn, self, h.user.HandleIsParticipant)
	r.GET("/organizer/:email", authn, self, h.user.HandleGetProfile)
	r.PATCH("/organizer/update-profile/:id", authn, organizer, h.user.HandleUpdateOrganizerProfile)
	r.PATCH("/participant/update-profile/:id", authn, h.user.HandleUpdateParticipantProfile)

	r.GET("/camps", h.camp.HandleListCamps)
	r.GET("/camps-count", h.camp.HandleCountCamps)
	r.GET("/camp/:id", h.camp.HandleGetCamp)
	r.GET("/popular-camps", h.camp.HandlePopularCamps)
	r.GET("/affordable-camps", h.camp.HandleAffordableCamps)
	r.POST("/camps", authn, organizer, h.camp.HandleCreateCamp)
	r.PUT("/update-camp/:campId", authn, organizer, h.camp.HandleUpdateCamp)
	r.DELETE("/delete-camp/:campId", authn, organizer, h.camp.HandleDeleteCamp)
	r.PATCH("/participant-count/:id", authn, h.camp.HandleIncrementParticipantCount)

	r.GET("/participants", authn, organizer, h.participant.HandleListParticipants)
	r.GET("/participants-count", authn, organizer, h.participant.HandleCountParticipants)
	r.GET("/registered-camps/:email", authn, self, h.participant.HandleRegisteredCamps)
	r.GET("/registered-camps-count/:email", authn, self, h.participant.HandleCountRegistered)
	r.GET("/participant/:id", authn, h.participant.HandleGetRegistration)
	r.POST("/participants", authn, h.participant.HandleRegister)
	r.PATCH("/confirmation-status/:id", authn, organizer, h.participant.HandleConfirm)
	r.DELETE("/cancel-registration/:id", authn, h.participant.HandleCancel)
	r.GET("/analytics/:email", authn, self, h.participant.HandleAnalytics)

	r.GET("/payment-history/:email", authn, self, h.payment.HandlePaymentHistory)
	r.GET("/history-count", authn, h.payment.HandleHistoryCount)
	r.POST("/create-payment-intent", authn, h.payment.HandleCreatePaymentIntent)
	r.POST("/payments", authn, h.payment.HandlePay)

	r.GET("/feedbacks", h.feedback.HandleListFeedbacks)
	r.POST("/feedbacks", authn, h.feedback.HandleCreateFeedback)
	r.GET("/feedback-data", h.feedback.HandleFeedbackSummary)

	r.GET("/ai-images/:email", authn, self, h.image.HandleListImages)
	r.POST("/generate", authn, h.image.HandleGenerate)

	r.GET("/organizer-stats", authn, organizer, h.stats.HandleOrganizerStats)
	r.GET("/participant-stats/:email", authn, self, h.stats.HandleParticipantStats)

	r.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "MediCamp API"
	docs.SwaggerInfo.Description = "Medical camp registration, payments and feedback."
	docs.SwaggerInfo.Version = "1.0"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
