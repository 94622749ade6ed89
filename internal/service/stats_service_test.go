package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dataquality/internal/domain"
	"dataquality/internal/service"
	"dataquality/mocks"
)

func TestStatsService_ClientStats(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewStatsService(repo)

	expected := &domain.ClientStats{Total: 10, Individual: 6, Corporate: 3, Institutional: 1}
	repo.On("Stats", mock.Anything).Return(expected, nil)

	stats, err := svc.ClientStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, stats)
	repo.AssertExpectations(t)
}

func TestStatsService_ClientStats_Error(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewStatsService(repo)

	repo.On("Stats", mock.Anything).Return(nil, errors.New("db down"))

	stats, err := svc.ClientStats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
}
