package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"squad-stats-backend/internal/database/models"
	apperrors "squad-stats-backend/internal/errors"
	"squad-stats-backend/internal/logger"
	"squad-stats-backend/internal/metrics"
	"squad-stats-backend/internal/repository"
	"squad-stats-backend/internal/stats"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CoachService answers a coach's question about a team using a text generator
type CoachService struct {
	teamRepo  repository.TeamRepositoryInterface
	gameRepo  repository.GameRepositoryInterface
	generator TextGenerator
	validator *validator.Validate
}

// NewCoachService creates a new coach service. A nil generator makes every
// Analyze call fail with ErrAIProviderNotConfigured.
func NewCoachService(teamRepo repository.TeamRepositoryInterface, gameRepo repository.GameRepositoryInterface, generator TextGenerator, validator *validator.Validate) *CoachService {
	return &CoachService{
		teamRepo:  teamRepo,
		gameRepo:  gameRepo,
		generator: generator,
		validator: validator,
	}
}

// AnalyzeRequest represents a question about a team
type AnalyzeRequest struct {
	TeamID   uuid.UUID `json:"team_id" validate:"required"`
	Question string    `json:"question" validate:"required,min=1,max=2000"`
}

// AnalyzeResponse carries the generated answer
type AnalyzeResponse struct {
	Reply string `json:"reply"`
}

// Analyze loads the team and its games, aggregates season totals and asks the
// generator to answer the question from that data only
func (s *CoachService) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var (
		team  *models.Team
		games []models.Game
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		team, err = s.teamRepo.GetByID(gctx, req.TeamID)
		if err != nil {
			return notFound(err, apperrors.ErrTeamNotFound, "get team")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.GetByTeamID(gctx, req.TeamID)
		if err != nil {
			return fmt.Errorf("failed to get games: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithField("team_id", req.TeamID)

	if s.generator == nil {
		metrics.AIRequests.WithLabelValues(metrics.AIOutcomeNotConfigured).Inc()
		log.Warn("AI coach requested but no provider is configured")
		return nil, apperrors.ErrAIProviderNotConfigured
	}

	prompt, err := BuildCoachPrompt(team, stats.SeasonTotals(games), req.Question)
	if err != nil {
		return nil, err
	}

	reply, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		metrics.AIRequests.WithLabelValues(metrics.AIOutcomeError).Inc()
		log.WithError(err).Error("AI coach request failed")

		if apperrors.IsUpstream(err) || apperrors.IsConfiguration(err) {
			return nil, err
		}
		return nil, apperrors.NewUpstreamError("ai provider", err)
	}

	metrics.AIRequests.WithLabelValues(metrics.AIOutcomeSuccess).Inc()
	return &AnalyzeResponse{Reply: reply}, nil
}

// BuildCoachPrompt renders the assistant-coach prompt for a team
func BuildCoachPrompt(team *models.Team, totals []stats.PlayerTotals, question string) (string, error) {
	statsJSON, err := json.Marshal(totals)
	if err != nil {
		return "", fmt.Errorf("failed to encode season totals: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an expert Basketball Assistant Coach.\n")
	fmt.Fprintf(&b, "Here is the raw data for the team %q:\n", team.Name)
	fmt.Fprintf(&b, "Roster: %s\n\n", strings.Join(team.PlayerNames(), ", "))
	b.WriteString("Current Season Stats (JSON format):\n")
	b.Write(statsJSON)
	b.WriteString("\n\nBased ONLY on this data, please answer this question from the head coach:\n")
	fmt.Fprintf(&b, "%q\n\n", question)
	b.WriteString("Keep the answer concise, professional, and highlight specific numbers to back up your claims.")
	return b.String(), nil
}
