package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ticketwise/api/docs"
	v1 "github.com/ticketwise/api/internal/api/handler/v1"
	"github.com/ticketwise/api/internal/api/middleware"
	"github.com/ticketwise/api/internal/config"
	"github.com/ticketwise/api/internal/repository"
	"github.com/ticketwise/api/internal/repository/dao"
	"github.com/ticketwise/api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	familyHandler := s.initFamilyHandler(db)
	sheetHandler := s.initSheetHandler(db)
	ticketHandler := s.initTicketHandler(db)
	teacherHandler := s.initTeacherHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	settingsHandler := s.initSettingsHandler(db)
	s.MountHandlers(authHandler, userHandler, familyHandler, sheetHandler, ticketHandler, teacherHandler, paymentHandler, settingsHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initFamilyHandler(db *gorm.DB) *v1.FamilyHandler {
	familyRepo := repository.NewFamilyRepository(dao.NewFamilyDAO(db))
	sheetRepo := repository.NewSheetRepository(dao.NewSheetDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	assetRepo := repository.NewAssetRepository(dao.NewAssetDAO(db))
	svc := service.NewFamilyService(familyRepo)
	sheetSvc := service.NewSheetService(sheetRepo, ticketRepo, assetRepo, familyRepo)
	handler := v1.NewFamilyHandler(svc, sheetSvc)

	return handler
}

func (s *Server) initSheetHandler(db *gorm.DB) *v1.SheetHandler {
	sheetRepo := repository.NewSheetRepository(dao.NewSheetDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	assetRepo := repository.NewAssetRepository(dao.NewAssetDAO(db))
	familyRepo := repository.NewFamilyRepository(dao.NewFamilyDAO(db))
	svc := service.NewSheetService(sheetRepo, ticketRepo, assetRepo, familyRepo)
	handler := v1.NewSheetHandler(svc)

	return handler
}

func (s *Server) initTicketHandler(db *gorm.DB) *v1.TicketHandler {
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	sheetRepo := repository.NewSheetRepository(dao.NewSheetDAO(db))
	familyRepo := repository.NewFamilyRepository(dao.NewFamilyDAO(db))
	svc := service.NewTicketService(ticketRepo, sheetRepo, familyRepo)
	handler := v1.NewTicketHandler(svc)

	return handler
}

func (s *Server) initTeacherHandler(db *gorm.DB) *v1.TeacherHandler {
	repo := repository.NewTeacherRepository(dao.NewTeacherDAO(db))
	svc := service.NewTeacherService(repo)
	handler := v1.NewTeacherHandler(svc)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	repo := repository.NewPaymentRepository(dao.NewPaymentDAO(db))
	familyRepo := repository.NewFamilyRepository(dao.NewFamilyDAO(db))
	svc := service.NewPaymentService(repo, familyRepo)
	handler := v1.NewPaymentHandler(svc)

	return handler
}

func (s *Server) initSettingsHandler(db *gorm.DB) *v1.SettingsHandler {
	repo := repository.NewAssetRepository(dao.NewAssetDAO(db))
	svc := service.NewSettingsService(repo)
	handler := v1.NewSettingsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	familyHandler *v1.FamilyHandler,
	sheetHandler *v1.SheetHandler,
	ticketHandler *v1.TicketHandler,
	teacherHandler *v1.TeacherHandler,
	paymentHandler *v1.PaymentHandler,
	settingsHandler *v1.SettingsHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users", userHandler.HandleListUsers)
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	families := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		families.GET("/families", familyHandler.HandleListFamilies)
		families.POST("/families", familyHandler.HandleCreateFamily)
		families.GET("/families/:familyID", familyHandler.HandleGetFamily)
		families.PUT("/families/:familyID", familyHandler.HandleUpdateFamily)
		families.DELETE("/families/:familyID", familyHandler.HandleDeleteFamily)
		families.POST("/families/:familyID/sheets/:sheetID/assign", familyHandler.HandleAssignSheet)
		families.POST("/families/:familyID/sheets/:sheetID/unassign", familyHandler.HandleUnassignSheet)
		families.GET("/families/:familyID/tickets", ticketHandler.HandleListFamilyTickets)
		families.POST("/families/:familyID/tickets/validate", ticketHandler.HandleValidateTickets)
	}

	sheets := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		sheets.GET("/sheets", sheetHandler.HandleListSheets)
		sheets.POST("/sheets/generate", sheetHandler.HandleGenerateSheets)
		sheets.GET("/sheets/:sheetID", sheetHandler.HandleGetSheet)
		sheets.GET("/sheets/:sheetID/render", sheetHandler.HandleExportSheet)
		sheets.DELETE("/sheets/:sheetID", sheetHandler.HandleDeleteSheet)
	}

	teachers := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		teachers.GET("/teachers", teacherHandler.HandleListTeachers)
		teachers.POST("/teachers", teacherHandler.HandleCreateTeacher)
		teachers.GET("/teachers/:teacherID", teacherHandler.HandleGetTeacher)
		teachers.PUT("/teachers/:teacherID", teacherHandler.HandleUpdateTeacher)
		teachers.DELETE("/teachers/:teacherID", teacherHandler.HandleDeleteTeacher)
	}

	payments := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		payments.GET("/payments", paymentHandler.HandleListPayments)
		payments.POST("/payments", paymentHandler.HandleRecordPayment)
		payments.PUT("/payments/:paymentID", paymentHandler.HandleUpdatePayment)
		payments.DELETE("/payments/:paymentID", paymentHandler.HandleDeletePayment)
	}

	settings := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		settings.GET("/settings/logo", settingsHandler.HandleGetLogo)
		settings.PUT("/settings/logo", settingsHandler.HandleUpdateLogo)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "TicketWise API"
	docs.SwaggerInfo.Description = "Back-office API for tutoring-center ticket sheets."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
