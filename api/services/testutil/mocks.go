package testutil

import (
	"context"
	"testing"

	"riftrewind/pkg/database/models"
	"riftrewind/pkg/models/recap"

	"github.com/stretchr/testify/mock"
)

// VerifyAllMocks asserts the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// MockRecapClient mocks the recap backend collaborator.
type MockRecapClient struct {
	mock.Mock
}

func (m *MockRecapClient) GetYearSummary(ctx context.Context, region string, gameName string, gameTag string) (*recap.YearResponse, error) {
	args := m.Called(ctx, region, gameName, gameTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recap.YearResponse), args.Error(1)
}

// MockProfileRepository mocks the stored profile repository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, record *models.PlayerProfileRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByPlayerID(ctx context.Context, playerID string) (*models.PlayerProfileRecord, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlayerProfileRecord), args.Error(1)
}
