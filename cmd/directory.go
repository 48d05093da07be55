package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// partnersCmd represents the partners command
var partnersCmd = &cobra.Command{
	Use:   "partners",
	Short: "List the partners of the site",
	RunE:  runPartners,
}

// personnelCmd represents the personnel command
var personnelCmd = &cobra.Command{
	Use:   "personnel",
	Short: "List the personnel of the site",
	RunE:  runPersonnel,
}

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events of the site",
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(partnersCmd)
	rootCmd.AddCommand(personnelCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runPartners(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	partners, err := client.Partners(ctx)
	if err != nil {
		return err
	}

	if len(partners) == 0 {
		fmt.Println("No partners found.")
		return nil
	}

	fmt.Printf("Found %d partners:\n", len(partners))
	fmt.Println(strings.Repeat("-", 60))
	for _, partner := range partners {
		fmt.Printf("• [%d] %s\n", partner.ID, renderText(partner.Name))
		if partner.Link != "" {
			fmt.Printf("  %s\n", partner.Link)
		}
	}

	return nil
}

func runPersonnel(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	people, err := client.Personnel(ctx)
	if err != nil {
		return err
	}

	if len(people) == 0 {
		fmt.Println("No personnel found.")
		return nil
	}

	fmt.Printf("Found %d personnel:\n", len(people))
	fmt.Println(strings.Repeat("-", 60))
	for _, person := range people {
		fmt.Printf("• [%d] %s\n", person.ID, renderText(person.Name))
		if person.Link != "" {
			fmt.Printf("  %s\n", person.Link)
		}
	}

	return nil
}

func runEvents(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	events, err := client.Events(ctx)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	fmt.Printf("Found %d events:\n", len(events))
	fmt.Println(strings.Repeat("-", 60))
	for _, event := range events {
		fmt.Printf("• [%d] %s\n", event.ID, renderText(event.Title))
		if event.Link != "" {
			fmt.Printf("  %s\n", event.Link)
		}
	}

	return nil
}
