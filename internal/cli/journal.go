package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/pin"
)

func newJournalCommand(openApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "PIN-protected private journal",
	}
	cmd.AddCommand(newJournalUnlockCommand(openApp))
	cmd.AddCommand(newJournalAddCommand(openApp))
	cmd.AddCommand(newJournalListCommand(openApp))
	cmd.AddCommand(newJournalEditCommand(openApp))
	cmd.AddCommand(newJournalDeleteCommand(openApp))
	return cmd
}

// unlockJournal walks the gate for one command invocation: first use
// enrolls a new PIN, afterwards a single attempt either unlocks or fails
// the command.
func unlockJournal(app *App) error {
	if app.Journal.GateState() == pin.StateUnset {
		fmt.Println("No journal PIN set yet.")
		code, err := promptPIN(fmt.Sprintf("Choose a PIN (%d+ characters)", pin.MinLength))
		if err != nil {
			return err
		}
		if _, err := app.Journal.Unlock(code); err != nil {
			return err
		}
		fmt.Println("PIN set. Keep it safe: there is no recovery.")
		return nil
	}

	code, err := promptPIN("Journal PIN")
	if err != nil {
		return err
	}
	unlocked, err := app.Journal.Unlock(code)
	if err != nil {
		return err
	}
	if !unlocked {
		return errors.New("incorrect PIN")
	}
	return nil
}

func newJournalUnlockCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Verify the journal PIN (sets one up on first use)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := unlockJournal(app); err != nil {
				return err
			}
			entries, err := app.Journal.List()
			if err != nil {
				return err
			}
			fmt.Printf("Journal unlocked. %d entries.\n", len(entries))
			return nil
		},
	}
}

func newJournalAddCommand(openApp appFactory) *cobra.Command {
	var (
		title   string
		content string
		date    string
		mood    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a new journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := unlockJournal(app); err != nil {
				return err
			}

			entry, err := app.Journal.Add(title, content, date, mood, app.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Saved entry %s (%s)\n", entry.ID, entry.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "entry title (required)")
	cmd.Flags().StringVar(&content, "content", "", "entry text (required)")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&mood, "mood", "", "mood emoji (default "+models.DefaultJournalMood+")")
	return cmd
}

func newJournalListCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := unlockJournal(app); err != nil {
				return err
			}

			entries, err := app.Journal.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No journal entries yet.")
				return nil
			}
			for _, entry := range entries {
				fmt.Printf("%s  %s %s  %s\n", entry.ID, entry.Date, entry.Mood, entry.Title)
			}
			return nil
		},
	}
}

func newJournalEditCommand(openApp appFactory) *cobra.Command {
	var (
		id      string
		title   string
		content string
		date    string
		mood    string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an existing entry by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := unlockJournal(app); err != nil {
				return err
			}

			entries, err := app.Journal.List()
			if err != nil {
				return err
			}
			var current *models.JournalEntry
			for index := range entries {
				if entries[index].ID == id {
					current = &entries[index]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("no journal entry with id %q", id)
			}

			if title != "" {
				current.Title = title
			}
			if content != "" {
				current.Content = content
			}
			if date != "" {
				current.Date = date
			}
			if mood != "" {
				current.Mood = mood
			}
			if err := app.Journal.Update(*current); err != nil {
				return err
			}
			fmt.Printf("Updated entry %s\n", current.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "entry id (required)")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new text")
	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&mood, "mood", "", "new mood emoji")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newJournalDeleteCommand(openApp appFactory) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an entry by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := unlockJournal(app); err != nil {
				return err
			}
			if err := app.Journal.Delete(id); err != nil {
				return err
			}
			fmt.Printf("Deleted entry %s (if it existed)\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "entry id (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
