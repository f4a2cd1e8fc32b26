package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lfgames/gameslib/internal/server/models"
	"github.com/lfgames/gameslib/internal/server/services"
)

type coverPayload struct {
	URL     string `json:"url"`
	ImageID string `json:"image_id"`
}

type gamePayload struct {
	GameID           int64        `json:"gameId"`
	Name             string       `json:"name"`
	Cover            coverPayload `json:"cover"`
	TotalRating      float64      `json:"total_rating"`
	FirstReleaseDate int64        `json:"first_release_date"`
	Platforms        []string     `json:"platforms"`
	Genres           []string     `json:"genres"`
	Completed        bool         `json:"completed"`
}

func (p *gamePayload) model() *models.Game {
	return &models.Game{
		GameID:           p.GameID,
		Name:             p.Name,
		CoverURL:         p.Cover.URL,
		CoverImageID:     p.Cover.ImageID,
		TotalRating:      p.TotalRating,
		FirstReleaseDate: p.FirstReleaseDate,
		Platforms:        p.Platforms,
		Genres:           p.Genres,
		Completed:        p.Completed,
	}
}

type addGameRequest struct {
	Game *gamePayload `json:"game"`
}

type setCompletedRequest struct {
	Completed *bool `json:"completed"`
}

func (s *Server) addGame(c *gin.Context) {
	var req addGameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Game == nil {
		abortWithError(c, http.StatusUnprocessableEntity, msgErrorFound)
		return
	}

	ctx := c.Request.Context()
	user, _ := UserFromContext(ctx)

	game, err := s.games.Add(ctx, user.ID, req.Game.model())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMalformedGame):
			abortWithError(c, http.StatusUnprocessableEntity, msgErrorFound)
		case errors.Is(err, services.ErrAlreadyOwned):
			abortWithError(c, http.StatusUnprocessableEntity, msgAlreadyOwned)
		default:
			s.logger.Error(ctx, "add game", "error", err)
			abortWithError(c, http.StatusInternalServerError, msgErrorFound)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"game": game})
}

func (s *Server) listGames(c *gin.Context) {
	ctx := c.Request.Context()
	user, _ := UserFromContext(ctx)

	games, err := s.games.List(ctx, user.ID)
	if err != nil {
		s.logger.Error(ctx, "list games", "error", err)
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

func (s *Server) setCompleted(c *gin.Context) {
	gameID, err := strconv.ParseInt(c.Param("gameId"), 10, 64)
	if err != nil || gameID <= 0 {
		abortWithError(c, http.StatusUnprocessableEntity, msgErrorFound)
		return
	}

	var req setCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		abortWithError(c, http.StatusUnprocessableEntity, msgErrorFound)
		return
	}

	ctx := c.Request.Context()
	user, _ := UserFromContext(ctx)

	game, err := s.games.SetCompleted(ctx, user.ID, gameID, *req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			abortWithError(c, http.StatusNotFound, msgGameNotFound)
		case errors.Is(err, services.ErrMalformedGame):
			abortWithError(c, http.StatusUnprocessableEntity, msgErrorFound)
		default:
			s.logger.Error(ctx, "set completed", "error", err)
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game})
}
