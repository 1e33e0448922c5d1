package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/lockboxapp/lockbox/internal/client/models"
	"github.com/lockboxapp/lockbox/internal/common"
)

// List fetches the vault and prints one line per entry, newest first.
// Passwords are not shown here; use show for a per-item reveal.
func (a *App) List(ctx context.Context) error {
	if err := a.vault.FetchAll(ctx); err != nil {
		return err
	}
	for _, e := range a.vault.Snapshot().Entries {
		fmt.Printf("%s  [%s] %s (%s)\n", e.ID, e.Type, e.Title, e.Username)
	}
	return nil
}

// Add collects the entry fields and creates it. Type and icon fall back to
// their defaults when left empty.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter account username", os.Stdout)
	if err != nil {
		return err
	}
	entryType, err := getSimpleText(a.reader, "Enter type (login/card/note)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	entry := models.NewCredentialEntry(title, username, string(password), models.EntryType(entryType), "")
	if err := a.vault.Add(ctx, entry); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Saved.")
	return nil
}

// Show reveals a single entry, password included, after the biometric
// unlock boundary approves.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter record id to show", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := a.unlocker.Unlock(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Unlock failed.")
		return nil
	}

	entry, found := a.findEntry(id)
	if !found {
		fmt.Println("No such entry.")
		return nil
	}
	a.vault.SetCurrent(entry)

	fmt.Printf("Title:    %s\n", entry.Title)
	fmt.Printf("Username: %s\n", entry.Username)
	fmt.Printf("Password: %s\n", entry.Password)
	fmt.Printf("Type:     %s\n", entry.Type)
	return nil
}

// Edit updates the selected fields of an existing entry; empty answers keep
// the stored value.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter record id to edit", os.Stdout)
	if err != nil {
		return err
	}
	entry, found := a.findEntry(id)
	if !found {
		fmt.Println("No such entry.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title ("+entry.Title+")", os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		entry.Title = title
	}
	username, err := getSimpleText(a.reader, "Enter account username ("+entry.Username+")", os.Stdout)
	if err != nil {
		return err
	}
	if username != "" {
		entry.Username = username
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) > 0 {
		entry.Password = string(password)
	}

	if err := a.vault.Update(ctx, entry); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Updated.")
	return nil
}

// Delete removes an entry by its identifier, prompting the user for the ID.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter record id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.vault.Delete(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func (a *App) findEntry(id string) (models.CredentialEntry, bool) {
	for _, e := range a.vault.Snapshot().Entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.CredentialEntry{}, false
}
