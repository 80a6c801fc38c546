package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Blog GraphQL API over users, profiles, posts and subscriptions",
		SilenceUsage: true,
	}

	serve := newServeCmd()
	root.AddCommand(serve, newMigrateCmd())

	// serve when no subcommand is given
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	if err := root.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
