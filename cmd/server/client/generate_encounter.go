package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

var (
	encounterDifficulty int
	encounterLocation   string
	encounterPartySize  int
)

var generateEncounterCmd = &cobra.Command{
	Use:   "generate-encounter",
	Short: "Generate an ad-hoc encounter",
	Long: `Generate a random encounter outside any dungeon. Examples:

  generate-encounter --difficulty 3 --location forest --party-size 4
  generate-encounter --difficulty 1 --location cave`,
	RunE: generateEncounter,
}

func init() {
	generateEncounterCmd.Flags().IntVar(&encounterDifficulty, "difficulty", 1, "Encounter difficulty")
	generateEncounterCmd.Flags().StringVar(&encounterLocation, "location", "dungeon", "Encounter location")
	generateEncounterCmd.Flags().IntVar(&encounterPartySize, "party-size", 1, "Party size")
}

func generateEncounter(cmd *cobra.Command, args []string) error {
	fmt.Printf("Generating a difficulty %d encounter in the %s for a party of %d...\n",
		encounterDifficulty, encounterLocation, encounterPartySize)

	var encounter entities.RandomEncounter
	err := postJSON("/v1alpha1/encounters:generate", map[string]any{
		"difficulty": encounterDifficulty,
		"location":   encounterLocation,
		"party_size": encounterPartySize,
	}, &encounter)
	if err != nil {
		return fmt.Errorf("failed to generate encounter: %w", err)
	}

	fmt.Printf("\n⚔️  Encounter at %s\n", encounter.Location)
	fmt.Printf("=====================\n")
	fmt.Printf("Environment: %v\n", encounter.Environment)
	if encounter.IsAmbush {
		fmt.Printf("It's an ambush!\n")
	}

	fmt.Printf("\nEnemies (%d):\n", len(encounter.Enemies))
	for _, enemy := range encounter.Enemies {
		fmt.Printf("  %s (level %d, %d HP, AC %d)\n",
			enemy.Name, enemy.Level, enemy.HitPoints, enemy.ArmorClass)
	}

	return nil
}
