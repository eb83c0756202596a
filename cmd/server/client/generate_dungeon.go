package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

var (
	dungeonLevel      int
	dungeonTheme      string
	dungeonSize       string
	dungeonDifficulty int
)

var generateDungeonCmd = &cobra.Command{
	Use:   "generate-dungeon",
	Short: "Generate a complete dungeon",
	Long: `Generate a dungeon and print its layout. Examples:

  generate-dungeon --level 3 --theme crypt --size small --difficulty 2
  generate-dungeon --level 5 --theme cave --size large --difficulty 4`,
	RunE: generateDungeon,
}

func init() {
	generateDungeonCmd.Flags().IntVar(&dungeonLevel, "level", 1, "Dungeon level")
	generateDungeonCmd.Flags().StringVar(&dungeonTheme, "theme", "crypt", "Dungeon theme")
	generateDungeonCmd.Flags().StringVar(&dungeonSize, "size", "medium", "Dungeon size class")
	generateDungeonCmd.Flags().IntVar(&dungeonDifficulty, "difficulty", 1, "Dungeon difficulty")
}

func generateDungeon(cmd *cobra.Command, args []string) error {
	fmt.Printf("Generating a %s %s dungeon (level %d, difficulty %d)...\n",
		dungeonSize, dungeonTheme, dungeonLevel, dungeonDifficulty)

	var dungeon entities.Dungeon
	err := postJSON("/v1alpha1/dungeons:generate", map[string]any{
		"level":      dungeonLevel,
		"theme":      dungeonTheme,
		"size":       dungeonSize,
		"difficulty": dungeonDifficulty,
	}, &dungeon)
	if err != nil {
		return fmt.Errorf("failed to generate dungeon: %w", err)
	}

	fmt.Printf("\n🏰 %s\n", dungeon.Name)
	fmt.Printf("=====================\n")
	fmt.Printf("%s\n", dungeon.Description)

	fmt.Printf("\nRooms (%d):\n", len(dungeon.Rooms))
	for _, room := range dungeon.Rooms {
		fmt.Printf("  [%d] %s (%s) at (%d, %d)\n", room.ID, room.Name, room.RoomType, room.X, room.Y)
		for _, exit := range room.Exits {
			fmt.Printf("      -> room %d (%s)\n", exit.ToRoom, exit.Direction)
		}
	}

	fmt.Printf("\nEncounters (%d):\n", len(dungeon.Encounters))
	for _, enc := range dungeon.Encounters {
		fmt.Printf("  room %d: %d enemies, difficulty %d", enc.RoomID, len(enc.Enemies), enc.Difficulty)
		if enc.IsAmbush {
			fmt.Printf(" (ambush!)")
		}
		fmt.Println()
	}

	fmt.Printf("\nTreasures (%d):\n", len(dungeon.Treasures))
	for _, treasure := range dungeon.Treasures {
		fmt.Printf("  room %d: %v, %d gold", treasure.RoomID, treasure.Items, treasure.Gold)
		if treasure.IsHidden {
			fmt.Printf(" (hidden)")
		}
		if treasure.TrapDifficulty > 0 {
			fmt.Printf(" (trapped: %d)", treasure.TrapDifficulty)
		}
		fmt.Println()
	}

	return nil
}
