package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"squad-stats-backend/internal/api/handlers"
	apperrors "squad-stats-backend/internal/errors"
	"squad-stats-backend/internal/mocks"
	"squad-stats-backend/internal/service"
	"squad-stats-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAnalyze(t *testing.T) {
	teamID := uuid.New()

	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{name: "team not found", serviceErr: apperrors.ErrTeamNotFound, expectedStatus: http.StatusNotFound, expectedError: "team not found"},
		{name: "empty question", serviceErr: apperrors.NewValidationError("question", "is required"), expectedStatus: http.StatusBadRequest, expectedError: "question"},
		{name: "provider not configured", serviceErr: apperrors.ErrAIProviderNotConfigured, expectedStatus: http.StatusServiceUnavailable, expectedError: "AI coach is currently unavailable"},
		{name: "provider failure", serviceErr: &apperrors.UpstreamError{Service: "gemini", Err: fmt.Errorf("status 500")}, expectedStatus: http.StatusServiceUnavailable, expectedError: "AI coach is currently unavailable"},
		{name: "unexpected failure", serviceErr: fmt.Errorf("boom"), expectedStatus: http.StatusInternalServerError, expectedError: "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockCoachServiceInterface(ctrl)
			httpSuite := testutils.SetupHTTPTest()
			httpSuite.Router.POST("/api/v1/ai/analyze", handlers.NewCoachHandler(mockService).Analyze)

			mockService.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, tc.serviceErr)

			recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/ai/analyze",
				map[string]string{"team_id": teamID.String(), "question": "Who should start?"})
			testutils.AssertErrorResponse(t, recorder, tc.expectedStatus, tc.expectedError)
		})
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockCoachServiceInterface(ctrl)
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.POST("/api/v1/ai/analyze", handlers.NewCoachHandler(mockService).Analyze)

		mockService.EXPECT().
			Analyze(gomock.Any(), &service.AnalyzeRequest{TeamID: teamID, Question: "Who should start?"}).
			Return(&service.AnalyzeResponse{Reply: "Start Ava."}, nil)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/ai/analyze",
			map[string]string{"team_id": teamID.String(), "question": "Who should start?"})

		var response service.AnalyzeResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Start Ava.", response.Reply)
	})
}
