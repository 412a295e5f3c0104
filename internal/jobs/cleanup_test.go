package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/kirana/internal/repository"
)

func TestPurgeExpiredOTPs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	store.EXPECT().DeleteExpiredOTPs(gomock.Any()).Return(int64(7), nil)

	result, err := PurgeExpiredOTPs(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.OTPsDeleted)
}

func TestPurgeExpiredOTPs_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repository.NewMockStore(ctrl)
	store.EXPECT().DeleteExpiredOTPs(gomock.Any()).Return(int64(0), errors.New("connection reset"))

	result, err := PurgeExpiredOTPs(context.Background(), store)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestIsCleanupJob(t *testing.T) {
	assert.True(t, IsCleanupJob(JobNamePurgeExpiredOTPs))
	assert.False(t, IsCleanupJob("email:order_confirmation"))
}
