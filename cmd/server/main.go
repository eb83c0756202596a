// Package main is the entry point for the DungeonForge API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeonforge-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "dungeonforge-api",
	Short: "DungeonForge procedural generation server",
	Long:  `DungeonForge API provides JSON HTTP endpoints for procedural dungeon generation, ad-hoc encounters, and NPC dialogue.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
