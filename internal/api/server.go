package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/tcg-tournament-api/docs"
	v1 "github.com/vietanh2810/tcg-tournament-api/internal/api/handler/v1"
	"github.com/vietanh2810/tcg-tournament-api/internal/api/middleware"
	"github.com/vietanh2810/tcg-tournament-api/internal/config"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository"
	"github.com/vietanh2810/tcg-tournament-api/internal/repository/dao"
	"github.com/vietanh2810/tcg-tournament-api/internal/service"
)

const metricsNamespace = "tcg_tournament_api"

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	metrics *middleware.Metrics
}

type handlers struct {
	health       *v1.HealthHandler
	card         *v1.CardHandler
	deck         *v1.DeckHandler
	decklist     *v1.DecklistHandler
	player       *v1.PlayerHandler
	collection   *v1.CollectionHandler
	organiser    *v1.OrganiserHandler
	venue        *v1.VenueHandler
	event        *v1.EventHandler
	registration *v1.RegistrationHandler
	ranking      *v1.RankingHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		metrics: middleware.NewMetrics(metricsNamespace),
	}

	s.MountMiddlewares()

	healthHandler, err := s.initHealthHandler(db)
	if err != nil {
		return nil, err
	}

	s.MountHandlers(handlers{
		health:       healthHandler,
		card:         s.initCardHandler(db),
		deck:         s.initDeckHandler(db),
		decklist:     s.initDecklistHandler(db),
		player:       s.initPlayerHandler(db),
		collection:   s.initCollectionHandler(db),
		organiser:    s.initOrganiserHandler(db),
		venue:        s.initVenueHandler(db),
		event:        s.initEventHandler(db),
		registration: s.initRegistrationHandler(db),
		ranking:      s.initRankingHandler(db),
	})

	return s, nil
}

func (s *Server) initHealthHandler(db *gorm.DB) (*v1.HealthHandler, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	return v1.NewHealthHandler(sqlDB), nil
}

func (s *Server) initCardHandler(db *gorm.DB) *v1.CardHandler {
	cardDAO := dao.NewCardDAO(db)
	repo := repository.NewCardRepository(cardDAO)
	svc := service.NewCardService(repo)
	handler := v1.NewCardHandler(svc)

	return handler
}

func (s *Server) initDeckHandler(db *gorm.DB) *v1.DeckHandler {
	deckDAO := dao.NewDeckDAO(db)
	repo := repository.NewDeckRepository(deckDAO)
	svc := service.NewDeckService(repo)
	handler := v1.NewDeckHandler(svc)

	return handler
}

func (s *Server) initDecklistHandler(db *gorm.DB) *v1.DecklistHandler {
	decklistDAO := dao.NewDecklistDAO(db)
	repo := repository.NewDecklistRepository(decklistDAO)
	svc := service.NewDecklistService(repo)
	handler := v1.NewDecklistHandler(svc)

	return handler
}

func (s *Server) initPlayerHandler(db *gorm.DB) *v1.PlayerHandler {
	playerDAO := dao.NewPlayerDAO(db)
	repo := repository.NewPlayerRepository(playerDAO)
	svc := service.NewPlayerService(repo)
	handler := v1.NewPlayerHandler(svc)

	return handler
}

func (s *Server) initCollectionHandler(db *gorm.DB) *v1.CollectionHandler {
	collectionDAO := dao.NewCollectionDAO(db)
	repo := repository.NewCollectionRepository(collectionDAO)
	svc := service.NewCollectionService(repo)
	handler := v1.NewCollectionHandler(svc)

	return handler
}

func (s *Server) initOrganiserHandler(db *gorm.DB) *v1.OrganiserHandler {
	organiserDAO := dao.NewOrganiserDAO(db)
	repo := repository.NewOrganiserRepository(organiserDAO)
	svc := service.NewOrganiserService(repo)
	handler := v1.NewOrganiserHandler(svc)

	return handler
}

func (s *Server) initVenueHandler(db *gorm.DB) *v1.VenueHandler {
	venueDAO := dao.NewVenueDAO(db)
	repo := repository.NewVenueRepository(venueDAO)
	svc := service.NewVenueService(repo)
	handler := v1.NewVenueHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initRegistrationHandler(db *gorm.DB) *v1.RegistrationHandler {
	registrationDAO := dao.NewRegistrationDAO(db)
	repo := repository.NewRegistrationRepository(registrationDAO)
	svc := service.NewRegistrationService(repo)
	handler := v1.NewRegistrationHandler(svc)

	return handler
}

func (s *Server) initRankingHandler(db *gorm.DB) *v1.RankingHandler {
	rankingDAO := dao.NewRankingDAO(db)
	repo := repository.NewRankingRepository(rankingDAO)
	svc := service.NewRankingService(repo)
	handler := v1.NewRankingHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Recovery())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(s.metrics.Middleware())
}

func (s *Server) MountHandlers(h handlers) {
	cards := s.Router.Group("/cards")
	{
		cards.POST("/", h.card.HandleCreateCard)
		cards.GET("/", h.card.HandleGetCards)
		cards.GET("/:cardID", h.card.HandleGetCard)
		cards.PUT("/:cardID", h.card.HandleUpdateCard)
		cards.PATCH("/:cardID", h.card.HandleUpdateCard)
		cards.DELETE("/:cardID", h.card.HandleDeleteCard)
	}

	decks := s.Router.Group("/decks")
	{
		decks.POST("/", h.deck.HandleCreateDeck)
		decks.GET("/", h.deck.HandleGetDecks)
		decks.GET("/:deckID", h.deck.HandleGetDeck)
		decks.PUT("/:deckID", h.deck.HandleUpdateDeck)
		decks.PATCH("/:deckID", h.deck.HandleUpdateDeck)
		decks.DELETE("/:deckID", h.deck.HandleDeleteDeck)
	}

	decklists := s.Router.Group("/decklists")
	{
		decklists.POST("/", h.decklist.HandleAddCard)
		decklists.GET("/", h.decklist.HandleGetDecklists)
		decklists.DELETE("/:deckID/:cardID", h.decklist.HandleRemoveCard)
	}

	players := s.Router.Group("/players")
	{
		players.POST("/", h.player.HandleCreatePlayer)
		players.GET("/", h.player.HandleGetPlayers)
		players.GET("/:playerID", h.player.HandleGetPlayer)
		players.PUT("/:playerID", h.player.HandleUpdatePlayer)
		players.PATCH("/:playerID", h.player.HandleUpdatePlayer)
		players.DELETE("/:playerID", h.player.HandleDeletePlayer)
	}

	collections := s.Router.Group("/collections")
	{
		collections.POST("/", h.collection.HandleAddDeck)
		collections.GET("/", h.collection.HandleGetCollections)
		collections.DELETE("/:collectionID", h.collection.HandleRemoveDeck)
	}

	organisers := s.Router.Group("/organisers")
	{
		organisers.POST("/", h.organiser.HandleCreateOrganiser)
		organisers.GET("/", h.organiser.HandleGetOrganisers)
		organisers.GET("/:organiserID", h.organiser.HandleGetOrganiser)
		organisers.PUT("/:organiserID", h.organiser.HandleUpdateOrganiser)
		organisers.PATCH("/:organiserID", h.organiser.HandleUpdateOrganiser)
		organisers.DELETE("/:organiserID", h.organiser.HandleDeleteOrganiser)
	}

	venues := s.Router.Group("/venues")
	{
		venues.POST("/", h.venue.HandleCreateVenue)
		venues.GET("/", h.venue.HandleGetVenues)
		venues.GET("/:venueID", h.venue.HandleGetVenue)
		venues.PUT("/:venueID", h.venue.HandleUpdateVenue)
		venues.PATCH("/:venueID", h.venue.HandleUpdateVenue)
		venues.DELETE("/:venueID", h.venue.HandleDeleteVenue)
	}

	events := s.Router.Group("/events")
	{
		events.POST("/", h.event.HandleCreateEvent)
		events.GET("/", h.event.HandleGetEvents)
		events.DELETE("/:eventID", h.event.HandleDeleteEvent)
	}

	registrations := s.Router.Group("/registrations")
	{
		registrations.POST("/", h.registration.HandleRegister)
		registrations.GET("/", h.registration.HandleGetRegistrations)
		registrations.DELETE("/:eventID/:playerID", h.registration.HandleUnregister)
	}

	rankings := s.Router.Group("/rankings")
	{
		rankings.POST("/", h.ranking.HandleCreateRanking)
		rankings.GET("/", h.ranking.HandleGetRankings)
		rankings.DELETE("/:playerID/:eventID", h.ranking.HandleDeleteRanking)
	}

	s.Router.GET("/", v1.HandleWelcome)
	s.Router.GET("/healthz", h.health.HandleHealthcheck)
	s.Router.GET("/metrics", s.metrics.Handler())
	s.Router.NoRoute(v1.HandleNoRoute)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "TCG Tournament API"
	docs.SwaggerInfo.Description = "Cards, decks, players, events and results of trading card game tournaments."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
