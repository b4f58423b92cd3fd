package dto

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
)

// DefaultTimeSeconds is recorded when a completion omits timeSeconds.
const DefaultTimeSeconds = 150

var ErrMissingScore = errors.New("mistakes and hintsUsed are required")

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type RootResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Cache     string `json:"cache,omitempty"`
}

type LevelGamesResponse struct {
	Level       models.Level  `json:"level"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Games       []models.Game `json:"games"`
}

type GameCompletionRequest struct {
	GameID      string `json:"gameId"`
	Mistakes    *int   `json:"mistakes"`
	HintsUsed   *int   `json:"hintsUsed"`
	TimeSeconds *int   `json:"timeSeconds"`
}

// Score returns the submitted score. mistakes and hintsUsed must be present;
// timeSeconds falls back to DefaultTimeSeconds.
func (r GameCompletionRequest) Score() (models.Score, error) {
	return newScore(r.Mistakes, r.HintsUsed, r.TimeSeconds)
}

type DailyCompletionRequest struct {
	GameID      string `json:"gameId"`
	Level       string `json:"level"`
	Mistakes    *int   `json:"mistakes"`
	HintsUsed   *int   `json:"hintsUsed"`
	TimeSeconds *int   `json:"timeSeconds"`
}

func (r DailyCompletionRequest) Score() (models.Score, error) {
	return newScore(r.Mistakes, r.HintsUsed, r.TimeSeconds)
}

func newScore(mistakes, hints, seconds *int) (models.Score, error) {
	if mistakes == nil || hints == nil {
		return models.Score{}, ErrMissingScore
	}
	s := models.Score{Mistakes: *mistakes, HintsUsed: *hints, TimeSeconds: DefaultTimeSeconds}
	if seconds != nil {
		s.TimeSeconds = *seconds
	}
	return s, nil
}

type ProgressResponse struct {
	Success  bool                 `json:"success"`
	Progress *models.UserProgress `json:"progress"`
}
