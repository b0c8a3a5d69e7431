package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"squad-stats-backend/internal/database/models"
	apperrors "squad-stats-backend/internal/errors"
	"squad-stats-backend/internal/mocks"
	"squad-stats-backend/internal/service"
	"squad-stats-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CoachServiceTestSuite defines the test suite for CoachService
type CoachServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTeamRepo  *mocks.MockTeamRepositoryInterface
	mockGameRepo  *mocks.MockGameRepositoryInterface
	mockGenerator *mocks.MockTextGenerator
	coachService  *service.CoachService
	ctx           context.Context
	team          *models.Team
}

// SetupTest sets up the test suite
func (suite *CoachServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.mockGenerator = mocks.NewMockTextGenerator(suite.ctrl)
	suite.coachService = service.NewCoachService(suite.mockTeamRepo, suite.mockGameRepo, suite.mockGenerator, service.NewValidator())
	suite.ctx = context.Background()
	suite.team = &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Hawks",
		Players:   []models.Player{{Name: "Alex"}, {Name: "Sam"}},
	}
}

// TearDownTest cleans up after each test
func (suite *CoachServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CoachServiceTestSuite) expectReads() {
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(suite.team, nil)
	suite.mockGameRepo.EXPECT().GetByTeamID(gomock.Any(), suite.team.ID).Return([]models.Game{
		{Opponent: "Lions", StatLines: []models.StatLine{{PlayerName: "Alex", Points: 22}}},
	}, nil)
}

func (suite *CoachServiceTestSuite) TestAnalyze() {
	suite.expectReads()
	suite.mockGenerator.EXPECT().
		GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			suite.Contains(prompt, `"Hawks"`)
			suite.Contains(prompt, "Roster: Alex, Sam")
			suite.Contains(prompt, `"points":22`)
			suite.Contains(prompt, `"Who should start?"`)
			return "Start Alex.", nil
		})

	resp, err := suite.coachService.Analyze(suite.ctx, &service.AnalyzeRequest{
		TeamID:   suite.team.ID,
		Question: "Who should start?",
	})
	suite.Require().NoError(err)
	suite.Equal("Start Alex.", resp.Reply)
}

func (suite *CoachServiceTestSuite) TestAnalyzeUnknownTeam() {
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), suite.team.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockGameRepo.EXPECT().GetByTeamID(gomock.Any(), suite.team.ID).Return(nil, nil).AnyTimes()

	_, err := suite.coachService.Analyze(suite.ctx, &service.AnalyzeRequest{TeamID: suite.team.ID, Question: "Why?"})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *CoachServiceTestSuite) TestAnalyzeValidation() {
	_, err := suite.coachService.Analyze(suite.ctx, &service.AnalyzeRequest{TeamID: suite.team.ID})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.coachService.Analyze(suite.ctx, &service.AnalyzeRequest{
		TeamID:   suite.team.ID,
		Question: strings.Repeat("x", 2001),
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *CoachServiceTestSuite) TestAnalyzeProviderFailureIsUpstream() {
	suite.expectReads()
	suite.mockGenerator.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

	_, err := suite.coachService.Analyze(suite.ctx, &service.AnalyzeRequest{TeamID: suite.team.ID, Question: "Why?"})
	suite.True(apperrors.IsUpstream(err))
}

func (suite *CoachServiceTestSuite) TestAnalyzeWithoutGenerator() {
	coach := service.NewCoachService(suite.mockTeamRepo, suite.mockGameRepo, nil, service.NewValidator())
	suite.expectReads()

	_, err := coach.Analyze(suite.ctx, &service.AnalyzeRequest{TeamID: suite.team.ID, Question: "Why?"})
	suite.ErrorIs(err, apperrors.ErrAIProviderNotConfigured)
}

func TestCoachServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoachServiceTestSuite))
}

func TestBuildCoachPrompt(t *testing.T) {
	team := &models.Team{Name: "Owls", Players: []models.Player{{Name: "Jo"}}}
	totals := []stats.PlayerTotals{{Name: "Jo", GamesPlayed: 1, Counters: stats.Counters{Rebounds: 9}}}

	prompt, err := service.BuildCoachPrompt(team, totals, "Who rebounds best?")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are an expert Basketball Assistant Coach."))
	assert.Contains(t, prompt, `"games_played":1`)
	assert.Contains(t, prompt, `"rebounds":9`)
	assert.Contains(t, prompt, "Based ONLY on this data")
}
