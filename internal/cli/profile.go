package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"moodmate/internal/models"
)

// Profile prints the logged-in account.
func (a *App) Profile(ctx context.Context) error {
	current := a.session.Current()
	if current == nil {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("Email:      %s\n", current.Email)
	fmt.Printf("First name: %s\n", current.FirstName)
	fmt.Printf("Last name:  %s\n", current.LastName)
	fmt.Printf("Age:        %d\n", current.Age)
	fmt.Printf("Gender:     %s\n", current.GenderTag)
	return nil
}

// EditProfile prompts for each editable field; an empty answer keeps the
// current value. Email and id are not editable.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.session.Current()
	if current == nil {
		fmt.Println("Not logged in")
		return nil
	}

	var patch models.AccountPatch

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", current.FirstName), os.Stdout)
	if err != nil {
		return err
	}
	if firstName != "" {
		patch.FirstName = &firstName
	}

	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", current.LastName), os.Stdout)
	if err != nil {
		return err
	}
	if lastName != "" {
		patch.LastName = &lastName
	}

	ageText, err := getSimpleText(a.reader, fmt.Sprintf("Age [%d]", current.Age), os.Stdout)
	if err != nil {
		return err
	}
	if ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil {
			fmt.Println("Age must be a number")
			return err
		}
		patch.Age = &age
	}

	gender, err := getSimpleText(a.reader, fmt.Sprintf("Gender [%s]", current.GenderTag), os.Stdout)
	if err != nil {
		return err
	}
	if gender != "" {
		patch.GenderTag = &gender
	}

	if _, err := a.session.UpdateProfile(ctx, patch); err != nil {
		fmt.Println("Could not update the profile")
		return err
	}

	fmt.Println("Profile updated")
	return nil
}
