package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/services/wallet/mocks"
)

func TestTopUpFlow_SuccessTrustsServerBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockWalletGW(ctrl)
	mockGW.EXPECT().GetProfile(gomock.Any(), "ravi@example.com", "MH12AB1234").Return(raviProfile(), nil)
	mockGW.EXPECT().GetHistory(gomock.Any(), "MH12AB1234").Return(nil, nil)

	dash := NewDashboard(mockGW, ownerSession())
	require.NoError(t, dash.Load(context.Background()))

	// Server applies the pending due as well, so the returned balance is
	// not local 120 + 200.
	mockGW.EXPECT().AddFunds(gomock.Any(), "ravi@example.com", 200.0).
		Return(models.Amount(320), nil)

	flow := NewTopUpFlow(mockGW, dash, time.Hour)
	flow.Open()
	flow.SetAmount("200")
	require.True(t, flow.CanSubmit())
	require.NoError(t, flow.Submit(context.Background()))

	assert.Equal(t, TopUpSuccess, flow.State())
	profile, ok := dash.Profile()
	require.True(t, ok)
	assert.Equal(t, 320.0, profile.WalletBalance.Float64())
}

func TestTopUpFlow_DwellClosesAndClearsAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockWalletGW(ctrl)
	mockGW.EXPECT().AddFunds(gomock.Any(), "ravi@example.com", 50.0).
		Return(models.Amount(170), nil)

	dash := NewDashboard(mockGW, ownerSession())
	flow := NewTopUpFlow(mockGW, dash, 20*time.Millisecond)
	flow.Open()
	flow.SetAmount("50")
	require.NoError(t, flow.Submit(context.Background()))
	require.Equal(t, TopUpSuccess, flow.State())

	assert.Eventually(t, func() bool {
		return flow.State() == TopUpClosed
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, flow.Amount())
}

func TestTopUpFlow_FailureKeepsDialogOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockWalletGW(ctrl)
	mockGW.EXPECT().AddFunds(gomock.Any(), "ravi@example.com", 200.0).
		Return(models.Amount(0), errors.New("connection refused"))

	dash := NewDashboard(mockGW, ownerSession())
	flow := NewTopUpFlow(mockGW, dash, time.Hour)
	flow.Open()
	flow.SetAmount("200")

	err := flow.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, TopUpOpen, flow.State())
	assert.Equal(t, "200", flow.Amount())
	assert.Error(t, flow.LastError())

	// Balance untouched on failure.
	_, ok := dash.Profile()
	assert.False(t, ok)
}

func TestTopUpFlow_InvalidAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockWalletGW(ctrl)
	dash := NewDashboard(mockGW, ownerSession())
	flow := NewTopUpFlow(mockGW, dash, time.Hour)
	flow.Open()

	for _, raw := range []string{"", "abc", "0", "-50"} {
		flow.SetAmount(raw)
		assert.False(t, flow.CanSubmit(), "amount %q", raw)
		err := flow.Submit(context.Background())
		assert.EqualError(t, err, "amount must be a positive number", "amount %q", raw)
		assert.Equal(t, TopUpOpen, flow.State())
	}
}

func TestTopUpFlow_CancelClearsAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockWalletGW(ctrl)
	dash := NewDashboard(mockGW, ownerSession())
	flow := NewTopUpFlow(mockGW, dash, time.Hour)

	flow.Open()
	flow.SetAmount("75")
	flow.Cancel()

	assert.Equal(t, TopUpClosed, flow.State())
	assert.Empty(t, flow.Amount(), "closing the dialog resets the staged amount")

	flow.Open()
	assert.Empty(t, flow.Amount())
}

func TestTopUpFlow_SubmitWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockWalletGW(ctrl)
	dash := NewDashboard(mockGW, stubSessions{ok: false})
	flow := NewTopUpFlow(mockGW, dash, time.Hour)
	flow.Open()
	flow.SetAmount("100")

	err := flow.Submit(context.Background())
	assert.EqualError(t, err, "not logged in")
}

func TestTopUpFlow_LaterRefreshOutranksTopUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockWalletGW(ctrl)
	dash := NewDashboard(mockGW, ownerSession())

	// The refresh stamp is issued after the top-up's, so its snapshot
	// wins even though applyBalance runs last.
	topupStamp := dash.nextStamp()
	refreshStamp := dash.nextStamp()

	fresh := raviProfile()
	fresh.WalletBalance = models.Amount(310)
	dash.mu.Lock()
	dash.applyProfileLocked(refreshStamp, fresh)
	dash.mu.Unlock()

	dash.applyBalance(topupStamp, models.Amount(320))

	profile, ok := dash.Profile()
	require.True(t, ok)
	assert.Equal(t, 310.0, profile.WalletBalance.Float64())
}
