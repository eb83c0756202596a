package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

var (
	questNPCID       string
	questPersonality string
	questPlayerLevel int
)

var generateQuestCmd = &cobra.Command{
	Use:   "generate-quest",
	Short: "Generate a quest",
	Long: `Generate a quest from an NPC or a raw personality. Examples:

  generate-quest --npc-id npc-grimble --player-level 3
  generate-quest --personality "a dutiful guard captain"`,
	RunE: generateQuest,
}

func init() {
	generateQuestCmd.Flags().StringVar(&questNPCID, "npc-id", "", "Quest giver NPC ID")
	generateQuestCmd.Flags().StringVar(&questPersonality, "personality", "", "Quest giver personality (when no NPC ID)")
	generateQuestCmd.Flags().IntVar(&questPlayerLevel, "player-level", 1, "Player level")
}

func generateQuest(cmd *cobra.Command, args []string) error {
	var quest entities.Quest
	err := postJSON("/v1alpha1/quests:generate", map[string]any{
		"npc_id":       questNPCID,
		"personality":  questPersonality,
		"player_level": questPlayerLevel,
	}, &quest)
	if err != nil {
		return fmt.Errorf("failed to generate quest: %w", err)
	}

	fmt.Printf("\n📜 %s (difficulty %d)\n", quest.Title, quest.Difficulty)
	fmt.Printf("=====================\n")
	fmt.Printf("%s\n", quest.Description)

	fmt.Printf("\nObjectives:\n")
	for _, objective := range quest.Objectives {
		fmt.Printf("  - %s\n", objective)
	}

	fmt.Printf("\nReward: %d XP, %d gold", quest.Reward.Experience, quest.Reward.Gold)
	if len(quest.Reward.Items) > 0 {
		fmt.Printf(", items: %v", quest.Reward.Items)
	}
	fmt.Println()

	return nil
}
