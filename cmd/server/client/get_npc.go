package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

var getNPCCmd = &cobra.Command{
	Use:   "get-npc [npc-id]",
	Short: "Show an NPC's stored state",
	Args:  cobra.ExactArgs(1),
	RunE:  getNPC,
}

func getNPC(cmd *cobra.Command, args []string) error {
	var state entities.NPCState
	if err := getJSON("/v1alpha1/npcs/"+args[0], &state); err != nil {
		return fmt.Errorf("failed to get NPC: %w", err)
	}

	fmt.Printf("\n🧙 %s (%s)\n", state.Name, state.ID)
	fmt.Printf("=====================\n")
	fmt.Printf("Personality: %s\n", state.Personality)
	fmt.Printf("Background: %s\n", state.Background)
	fmt.Printf("Mood: %s\n", state.CurrentMood)

	if len(state.Memory) > 0 {
		fmt.Printf("\nRecent interactions:\n")
		for _, line := range state.Memory {
			fmt.Printf("  %s\n", line)
		}
	}

	if len(state.Relationships) > 0 {
		fmt.Printf("\nRelationships:\n")
		for player, rel := range state.Relationships {
			fmt.Printf("  %s: affinity %d\n", player, rel.Affinity)
		}
	}

	return nil
}
