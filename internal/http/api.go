package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tourney-hub/internal/auth"
	"tourney-hub/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users       service.UserService
	tournaments service.TournamentService
	subscribers service.SubscriberService
	tokens      *auth.TokenManager
	staticDir   string
	logger      logrus.FieldLogger
}

func NewHandler(
	users service.UserService,
	tournaments service.TournamentService,
	subscribers service.SubscriberService,
	tokens *auth.TokenManager,
	staticDir string,
	logger logrus.FieldLogger,
) *Handler {
	return &Handler{
		users:       users,
		tournaments: tournaments,
		subscribers: subscribers,
		tokens:      tokens,
		staticDir:   staticDir,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.GET("/tournaments", h.listTournaments)
		api.POST("/tournaments", requireAuth(h.tokens), h.createTournament)
		api.POST("/tournaments/:id/join", requireAuth(h.tokens), h.joinTournament)
		api.POST("/subscribe", h.subscribe)
		api.GET("/me", requireAuth(h.tokens), h.me)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	if h.staticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(h.staticDir))))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTournamentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User exists"})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered"})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		h.fail(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) createTournament(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := h.tournaments.Create(c.Request.Context(), req.Name, req.Description, identity.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tournamentToResponse(*details))
}

func (h *Handler) listTournaments(c *gin.Context) {
	details, err := h.tournaments.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]TournamentResponse, len(details))
	for i := range details {
		resp[i] = tournamentToResponse(details[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) joinTournament(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	details, err := h.tournaments.Join(c.Request.Context(), c.Param("id"), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tournamentToResponse(*details))
}

func (h *Handler) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.subscribers.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already subscribed"})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed"})
}

func (h *Handler) me(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": identity.UserID, "email": identity.Email})
}

// fail maps remaining errors: validation problems go to the client,
// everything else is a storage-level failure logged with detail
// server-side and reported generically.
func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

type TournamentResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Owner        string   `json:"owner"`
	Participants []string `json:"participants"`
	CreatedAt    string   `json:"created_at"`
}

func tournamentToResponse(details service.TournamentDetails) TournamentResponse {
	return TournamentResponse{
		ID:           details.ID,
		Name:         details.Name,
		Description:  details.Description,
		Owner:        details.OwnerEmail,
		Participants: details.ParticipantEmails,
		CreatedAt:    details.CreatedAt.Format(time.RFC3339),
	}
}
