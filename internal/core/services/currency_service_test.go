package services_test

import (
	"context"
	"testing"

	"github.com/bizledger/journal_entry_app/internal/apperrors"
	"github.com/bizledger/journal_entry_app/internal/core/domain"
	portsrepo "github.com/bizledger/journal_entry_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/journal_entry_app/internal/core/ports/services"
	"github.com/bizledger/journal_entry_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepository = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NormalizesCode() {
	ctx := context.Background()
	usd := &domain.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Once()

	got, err := suite.service.GetCurrencyByCode(ctx, "  usd ")

	suite.Require().NoError(err)
	suite.Equal("USD", got.CurrencyCode)
	suite.Equal(int32(2), got.Precision)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_EmptyFails() {
	_, err := suite.service.GetCurrencyByCode(context.Background(), "  ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCurrencyByCode(ctx, "ZZZ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	ctx := context.Background()
	currencies := []domain.Currency{
		{CurrencyCode: "JPY", Precision: 0},
		{CurrencyCode: "USD", Precision: 2},
	}
	suite.mockRepo.On("ListCurrencies", ctx).Return(currencies, nil).Once()

	got, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	assert.Len(suite.T(), got, 2)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListCurrencies(ctx)

	suite.Require().Error(err)
	suite.Contains(err.Error(), assert.AnError.Error())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
