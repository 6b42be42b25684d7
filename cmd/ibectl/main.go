package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag  string
	convFlag string
	rootCmd  = &cobra.Command{
		Use:   "ibectl",
		Short: "CLI client for the IBE mock booking backend",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "IBE mock base URL")
	rootCmd.PersistentFlags().StringVarP(&convFlag, "conversation", "c", "", "Conversation ID (generated when empty)")

	var origin, destination, date string
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Run a flight search and print the response",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := newClient(apiFlag, convFlag)
			data, err := cl.search(origin, destination, date)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	searchCmd.Flags().StringVarP(&origin, "origin", "o", "AAA", "Origin airport code")
	searchCmd.Flags().StringVarP(&destination, "destination", "d", "BBB", "Destination airport code")
	searchCmd.Flags().StringVarP(&date, "date", "t", "2026-02-01", "Departure date (YYYY-MM-DD)")
	rootCmd.AddCommand(searchCmd)

	flowCmd := &cobra.Command{
		Use:   "flow",
		Short: "Run the full booking smoke flow: search, select, confirm, seats, bags, meals, book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(newClient(apiFlag, convFlag), os.Stdout)
		},
	}
	rootCmd.AddCommand(flowCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
