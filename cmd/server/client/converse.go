package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	conversePlayerName  string
	conversePlayerLevel int
	converseName        string
	conversePersonality string
)

var converseCmd = &cobra.Command{
	Use:   "converse [npc-id] [message]",
	Short: "Talk to an NPC",
	Long: `Send a message to an NPC and see the reply. Examples:

  converse npc-grimble "Hello there!"
  converse npc-grimble "Where is the tavern?" --player-name alice
  converse npc-aldric "Greetings" --name Aldric --personality "a wise old sage"`,
	Args: cobra.ExactArgs(2),
	RunE: converse,
}

func init() {
	converseCmd.Flags().StringVar(&conversePlayerName, "player-name", "", "Player name for relationship tracking")
	converseCmd.Flags().IntVar(&conversePlayerLevel, "player-level", 1, "Player level")
	converseCmd.Flags().StringVar(&converseName, "name", "", "NPC display name (first contact only)")
	converseCmd.Flags().StringVar(&conversePersonality, "personality", "", "NPC personality (first contact only)")
}

type converseResult struct {
	NPCID        string         `json:"npc_id"`
	Response     string         `json:"response"`
	Mood         string         `json:"mood"`
	MoodChanged  bool           `json:"mood_changed"`
	QuestOffered map[string]any `json:"quest_offered"`
}

func converse(cmd *cobra.Command, args []string) error {
	npcID := args[0]
	message := args[1]

	var result converseResult
	err := postJSON("/v1alpha1/npcs/converse", map[string]any{
		"npc_id":       npcID,
		"message":      message,
		"player_name":  conversePlayerName,
		"player_level": conversePlayerLevel,
		"name":         converseName,
		"personality":  conversePersonality,
	}, &result)
	if err != nil {
		return fmt.Errorf("failed to converse: %w", err)
	}

	fmt.Printf("\n💬 %s says:\n", result.NPCID)
	fmt.Printf("  %s\n", result.Response)
	fmt.Printf("\nMood: %s", result.Mood)
	if result.MoodChanged {
		fmt.Printf(" (changed)")
	}
	fmt.Println()

	if result.QuestOffered != nil {
		fmt.Printf("\n📜 Quest offered: %v\n", result.QuestOffered["title"])
		fmt.Printf("  %v\n", result.QuestOffered["description"])
	}

	return nil
}
