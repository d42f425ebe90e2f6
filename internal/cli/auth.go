package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"moodmate/internal/models"
	"moodmate/internal/users"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing; they point to the interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register collects the account fields and creates the account. A
// successful registration logs the new user in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	ageText, err := getSimpleText(a.reader, "Enter age", os.Stdout)
	if err != nil {
		return err
	}
	age, err := strconv.Atoi(ageText)
	if err != nil {
		fmt.Println("Age must be a number")
		return err
	}
	gender, err := getSimpleText(a.reader, "Enter gender", os.Stdout)
	if err != nil {
		return err
	}

	err = a.session.Register(ctx, models.Registration{
		Email:     email,
		Secret:    password,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		GenderTag: gender,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			fmt.Println("That email is already registered")
			return err
		}
		return err
	}

	fmt.Printf("Welcome, %s!\n", firstName)
	return nil
}

// Login prompts for credentials and authenticates. A failed attempt leaves
// the current session as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password")
			return err
		}
		return err
	}

	fmt.Printf("Welcome back, %s!\n", a.session.Current().FirstName)
	return nil
}

// Logout clears the persisted session. Safe to call while anonymous.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
