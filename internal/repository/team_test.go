package repository

import (
	"context"
	"testing"
	"time"

	"squad-stats-backend/internal/database/models"
	"squad-stats-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	games         *GameRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.games = NewGameRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) TestCreateAndGetByID() {
	team := suite.factories.Team.WithPlayers("Alex", "Sam", "Jo")

	err := suite.repo.Create(suite.ctx, team)
	suite.Require().NoError(err)

	found, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal(team.Name, found.Name)
	suite.Equal([]string{"Alex", "Sam", "Jo"}, found.PlayerNames())
}

func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetAllOrderedByCreation() {
	first := suite.factories.Team.WithName("Hawks")
	second := suite.factories.Team.WithName("Owls")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	suite.Require().NoError(suite.repo.Create(suite.ctx, second))

	teams, err := suite.repo.GetAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 2)
	suite.Equal("Hawks", teams[0].Name)
	suite.Equal("Owls", teams[1].Name)
}

func (suite *TeamRepositoryTestSuite) TestExists() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))

	ok, err := suite.repo.Exists(suite.ctx, team.ID)
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.repo.Exists(suite.ctx, uuid.New())
	suite.NoError(err)
	suite.False(ok)
}

func (suite *TeamRepositoryTestSuite) TestUpdateName() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))

	suite.Require().NoError(suite.repo.UpdateName(suite.ctx, team.ID, "Renamed"))
	found, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", found.Name)

	err = suite.repo.UpdateName(suite.ctx, uuid.New(), "Nobody")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestRosterOperations() {
	team := suite.factories.Team.WithPlayers("Alex")
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))

	added := suite.factories.Player.WithTeam(team.ID)
	added.Name = "Sam"
	suite.Require().NoError(suite.repo.AddPlayer(suite.ctx, added))
	suite.Equal(1, added.RosterOrder)

	added.Name = "Samuel"
	added.Number = 23
	suite.Require().NoError(suite.repo.UpdatePlayer(suite.ctx, added))

	found, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Alex", "Samuel"}, found.PlayerNames())
	suite.Equal(23, found.Players[1].Number)

	suite.Require().NoError(suite.repo.RemovePlayer(suite.ctx, team.ID, team.Players[0].ID))
	found, err = suite.repo.GetByID(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Samuel"}, found.PlayerNames())

	err = suite.repo.RemovePlayer(suite.ctx, team.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// A player cannot be edited through another team
	added.TeamID = uuid.New()
	err = suite.repo.UpdatePlayer(suite.ctx, added)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestDeleteCascadesToGames() {
	team := suite.factories.Team.WithPlayers("Alex")
	other := suite.factories.Team.WithName("Others")
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))

	date := time.Date(2025, time.February, 1, 18, 0, 0, 0, time.UTC)
	game := suite.factories.Game.ForTeam(team.ID, "Lions", date, suite.factories.StatLine.WithPoints("Alex", 12))
	kept := suite.factories.Game.ForTeam(other.ID, "Bears", date, suite.factories.StatLine.WithPoints("Jo", 4))
	suite.Require().NoError(suite.games.Create(suite.ctx, game))
	suite.Require().NoError(suite.games.Create(suite.ctx, kept))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, team.ID))

	_, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.games.GetByID(suite.ctx, game.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var orphanLines int64
	suite.baseTestSuite.DB.Model(&models.StatLine{}).Where("game_id = ?", game.ID).Count(&orphanLines)
	suite.Zero(orphanLines)

	stillThere, err := suite.games.GetByID(suite.ctx, kept.ID)
	suite.Require().NoError(err)
	suite.Len(stillThere.StatLines, 1)
}

func (suite *TeamRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
