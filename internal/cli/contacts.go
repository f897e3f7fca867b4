package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/models"
)

func newContactsCommand(openApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage emergency contacts",
	}
	cmd.AddCommand(newContactsAddCommand(openApp))
	cmd.AddCommand(newContactsListCommand(openApp))
	cmd.AddCommand(newContactsEditCommand(openApp))
	cmd.AddCommand(newContactsDeleteCommand(openApp))
	return cmd
}

func newContactsAddCommand(openApp appFactory) *cobra.Command {
	var (
		name         string
		phone        string
		relationship string
		email        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an emergency contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			contact, err := app.Contacts.Add(name, phone, relationship, email, app.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", contact.Name, contact.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "contact name (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (required)")
	cmd.Flags().StringVar(&relationship, "relationship", "", "relationship")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}

func newContactsListCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List emergency contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			contacts := app.Contacts.List()
			if len(contacts) == 0 {
				fmt.Println("No emergency contacts yet.")
				return nil
			}
			for _, contact := range contacts {
				fmt.Printf("%s  %s  %s", contact.ID, contact.Name, contact.Phone)
				if contact.Relationship != "" {
					fmt.Printf("  (%s)", contact.Relationship)
				}
				if contact.Email != "" {
					fmt.Printf("  %s", contact.Email)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newContactsEditCommand(openApp appFactory) *cobra.Command {
	var (
		id           string
		name         string
		phone        string
		relationship string
		email        string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a contact by id (the id never changes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			var current *models.Contact
			contacts := app.Contacts.List()
			for index := range contacts {
				if contacts[index].ID == id {
					current = &contacts[index]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("no contact with id %q", id)
			}

			if name != "" {
				current.Name = name
			}
			if phone != "" {
				current.Phone = phone
			}
			if relationship != "" {
				current.Relationship = relationship
			}
			if email != "" {
				current.Email = email
			}
			if err := app.Contacts.Update(*current); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", current.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "contact id (required)")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone number")
	cmd.Flags().StringVar(&relationship, "relationship", "", "new relationship")
	cmd.Flags().StringVar(&email, "email", "", "new email address")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newContactsDeleteCommand(openApp appFactory) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a contact by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			return app.Contacts.Delete(id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "contact id (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
