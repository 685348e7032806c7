package cli

import (
	"context"
	"fmt"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

func (a *App) loginUser(ctx context.Context) error {
	email, err := ReadLine(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := ReadPassword("Password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.LoginUser(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return nil
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

func (a *App) loginAdmin(ctx context.Context) error {
	email, err := ReadLine(a.reader, "Admin email", a.out)
	if err != nil {
		return err
	}
	password, err := ReadPassword("Password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.LoginAdmin(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return nil
	}

	fmt.Fprintln(a.out, "Logged in as administrator.")
	return nil
}

func (a *App) register(ctx context.Context) error {
	var req models.RegisterRequest
	fields := []struct {
		label string
		dest  *string
	}{
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
		{"Email", &req.Email},
		{"Phone number", &req.PhoneNumber},
		{"Vehicle number", &req.VehicleNumber},
		{"Address line 1", &req.AddressLine1},
		{"City", &req.City},
		{"State", &req.State},
		{"Country", &req.Country},
		{"PIN code", &req.Pin},
	}
	for _, f := range fields {
		value, err := ReadLine(a.reader, f.label, a.out)
		if err != nil {
			return err
		}
		*f.dest = value
	}

	password, err := ReadPassword("Password", a.out)
	if err != nil {
		return err
	}
	req.Password = password

	message, err := a.auth.Register(ctx, req)
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return nil
	}

	fmt.Fprintln(a.out, message)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return nil
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
