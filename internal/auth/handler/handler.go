package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bbeualll199/uso-auth/internal/apperr"
	"github.com/bbeualll199/uso-auth/internal/auth/provider"
	"github.com/bbeualll199/uso-auth/internal/auth/token"
	"github.com/bbeualll199/uso-auth/internal/logger"
	"github.com/bbeualll199/uso-auth/internal/member"
	"github.com/bbeualll199/uso-auth/internal/middleware"
)

type Handler struct {
	verifier   provider.Verifier
	tokens     *token.Manager
	reconciler *member.Reconciler
	store      member.Store
}

func NewHandler(
	verifier provider.Verifier,
	tokens *token.Manager,
	reconciler *member.Reconciler,
	store member.Store,
) *Handler {
	return &Handler{
		verifier:   verifier,
		tokens:     tokens,
		reconciler: reconciler,
		store:      store,
	}
}

// RegisterRoutes wires the three operations. requireAuth gates the
// credential-protected routes; token exchange is naturally public.
func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.POST("/auth/kakao", h.exchangeToken)

	protected := r.Group("/")
	protected.Use(requireAuth)
	protected.POST("/members/upsert", h.syncProfile)
	protected.GET("/me", h.readProfile)
}

// exchangeToken: external access token -> verify -> issue internal credential.
func (h *Handler) exchangeToken(c *gin.Context) {
	var req struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessToken == "" {
		respondError(c, apperr.MissingInput("access_token is required"))
		return
	}

	identity, err := h.verifier.Verify(c.Request.Context(), req.AccessToken)
	if err != nil {
		respondError(c, err)
		return
	}

	signed, err := h.tokens.Issue(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("token issued", map[string]any{
		"provider":         identity.Provider,
		"provider_user_id": identity.ProviderUserID,
	})

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

// syncProfile: valid internal credential + live external token -> reconcile.
// The external token is supplied separately because the sync needs live
// provider data the credential does not carry.
func (h *Handler) syncProfile(c *gin.Context) {
	var req struct {
		KakaoAccessToken string `json:"kakao_access_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.KakaoAccessToken == "" {
		respondError(c, apperr.MissingInput("kakao_access_token is required"))
		return
	}

	record, err := h.reconciler.Reconcile(c.Request.Context(), req.KakaoAccessToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "member": record})
}

// readProfile: store lookup by the credential's key. An unknown key is a
// success with a null member, not an error.
func (h *Handler) readProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c.Request.Context())
	if !ok {
		respondError(c, apperr.NoCredential())
		return
	}

	record, err := h.store.Get(c.Request.Context(), claims.Provider, claims.ProviderUserID)
	if err != nil {
		respondError(c, apperr.StoreError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": record})
}
