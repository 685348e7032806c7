package cli

import (
	"context"
	"fmt"
	"time"

	walletuc "github.com/quadgate/tollpass/services/wallet/usecase"

	"github.com/quadgate/tollpass/internal/utils"
)

func (a *App) showDashboard(ctx context.Context) error {
	if err := a.dashboard.Load(ctx); err != nil {
		fmt.Fprintln(a.out, err)
		return nil
	}

	if profile, ok := a.dashboard.Profile(); ok {
		RenderProfile(a.out, profile)
	} else if err := a.dashboard.ProfileError(); err != nil {
		fmt.Fprintln(a.out, "Profile unavailable:", err)
	}

	fmt.Fprintln(a.out)
	if err := a.dashboard.HistoryError(); err != nil {
		fmt.Fprintln(a.out, "History unavailable:", err)
		return nil
	}
	RenderLedger(a.out, a.dashboard.Entries(), a.dashboard.TotalCharges())
	return nil
}

func (a *App) addFunds(ctx context.Context) error {
	a.topup.Open()
	defer func() {
		if a.topup.State() == walletuc.TopUpOpen {
			a.topup.Cancel()
		}
	}()

	amount, err := ReadLine(a.reader, "Amount (INR)", a.out)
	if err != nil {
		return err
	}
	a.topup.SetAmount(amount)

	if !a.topup.CanSubmit() {
		fmt.Fprintln(a.out, "Amount must be a positive number.")
		return nil
	}

	if err := a.topup.Submit(ctx); err != nil {
		fmt.Fprintln(a.out, "Top-up failed:", err)
		return nil
	}

	if profile, ok := a.dashboard.Profile(); ok {
		fmt.Fprintf(a.out, "Funds added. New balance: %s\n",
			utils.FormatINR(profile.WalletBalance.Float64()))
	} else {
		fmt.Fprintln(a.out, "Funds added.")
	}

	// Let the success state dwell briefly, mirroring the confirmation
	// screen before the dialog dismisses itself.
	for a.topup.State() == walletuc.TopUpSuccess {
		time.Sleep(50 * time.Millisecond)
	}
	return nil
}
