package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lfgames/gameslib/internal/server/services"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, msgMissingCredentials)
		return
	}

	ctx := c.Request.Context()
	sess, err := s.users.Register(ctx, req.Email, req.Password, req.UserName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			abortWithError(c, http.StatusUnprocessableEntity, msgMissingCredentials)
		case errors.Is(err, services.ErrPasswordTooShort):
			abortWithError(c, http.StatusUnprocessableEntity, msgPasswordTooShort)
		case errors.Is(err, services.ErrPasswordTooLong):
			abortWithError(c, http.StatusUnprocessableEntity, msgPasswordTooLong)
		case errors.Is(err, services.ErrEmailTaken):
			abortWithError(c, http.StatusUnprocessableEntity, msgEmailTaken)
		default:
			s.logger.Error(ctx, "register", "error", err)
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": sess.Token, "user": sess.User})
}

func (s *Server) signIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, msgMissingCredentials)
		return
	}

	ctx := c.Request.Context()
	sess, err := s.users.SignIn(ctx, req.Email, req.Password, req.UserName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			abortWithError(c, http.StatusUnprocessableEntity, msgMissingCredentials)
		case errors.Is(err, services.ErrEmailNotFound):
			abortWithError(c, http.StatusNotFound, msgEmailNotFound)
		case errors.Is(err, services.ErrBadCredentials):
			abortWithError(c, http.StatusUnprocessableEntity, msgBadCredentials)
		default:
			s.logger.Error(ctx, "sign in", "error", err)
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": sess.Token, "user": sess.User, "games": sess.Games})
}

func (s *Server) profile(c *gin.Context) {
	user, _ := UserFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) signOut(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := UserFromContext(ctx)
	token, _ := TokenFromContext(ctx)
	claims, _ := ClaimsFromContext(ctx)
	if !ok || claims == nil {
		abortWithError(c, http.StatusUnprocessableEntity, msgNotSignedIn)
		return
	}

	if err := s.users.SignOut(ctx, user.ID, token, claims.ExpiresAt.Time); err != nil {
		if errors.Is(err, services.ErrNotSignedIn) {
			abortWithError(c, http.StatusUnprocessableEntity, msgNotSignedIn)
			return
		}
		s.logger.Error(ctx, "sign out", "error", err)
		abortWithError(c, http.StatusInternalServerError, msgSignOutFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgSignedOut})
}
