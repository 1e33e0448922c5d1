package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/lockboxapp/lockbox/internal/client/models"
	"github.com/lockboxapp/lockbox/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a full profile and submits it. The server performs a
// login instead when the email already exists, so a "registration" against
// a taken email behaves like a login attempt.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	dob, err := getSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD, optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.session.SubmitProfile(ctx, models.Profile{
		Email:    email,
		Password: string(password),
		Name:     name,
		DOB:      dob,
	})
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and submits them through the session store.
// The guard's redirect (printed by the navigator) confirms the transition.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SubmitCredentials(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return nil
}

// Logout drops the session: store cleared, bearer token discarded. The
// bound navigator bounces back to the login screen on the store change.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.api.ClearToken()
	return nil
}
