package catalog

import "github.com/dungeonforge/dungeonforge-api/internal/entities"

const baseMonsterName = "goblin"

var defaultMonsterOrder = []string{"goblin", "orc", "skeleton", "troll"}

var defaultEnvironment = []string{"Unknown Area"}

func defaultRoomTemplates() map[entities.RoomType]RoomTemplate {
	return map[entities.RoomType]RoomTemplate{
		entities.RoomTypeEntrance: {
			Names: []string{"Cave Entrance", "Ancient Doorway", "Hidden Passage", "Stone Arch"},
			Descriptions: []string{
				"A dark opening in the rock face, with ancient runes carved around the edges.",
				"A massive stone door stands partially open, revealing darkness beyond.",
				"A narrow passage leads downward, the air thick with ancient dust.",
				"An ornate archway of weathered stone marks the entrance to forgotten depths.",
			},
		},
		entities.RoomTypeCorridor: {
			Names: []string{"Stone Corridor", "Narrow Passage", "Winding Tunnel", "Ancient Hallway"},
			Descriptions: []string{
				"A long corridor of rough-hewn stone, lit by flickering torches.",
				"A narrow passage that twists and turns through the rock.",
				"A winding tunnel with walls covered in strange markings.",
				"An ancient hallway with crumbling stonework and scattered debris.",
			},
		},
		entities.RoomTypeChamber: {
			Names: []string{"Great Chamber", "Ancient Hall", "Vaulted Room", "Stone Chamber"},
			Descriptions: []string{
				"A vast chamber with high ceilings and pillars of stone.",
				"An ancient hall that echoes with the whispers of forgotten times.",
				"A vaulted room with intricate stonework and mysterious symbols.",
				"A large stone chamber with walls covered in ancient tapestries.",
			},
		},
		entities.RoomTypeTreasury: {
			Names: []string{"Treasure Vault", "Golden Chamber", "Wealth Room", "Jeweled Hall"},
			Descriptions: []string{
				"A chamber filled with the glint of gold and precious gems.",
				"A golden chamber that sparkles with untold wealth.",
				"A room overflowing with treasures from ages past.",
				"A jeweled hall where riches beyond imagination await.",
			},
		},
		entities.RoomTypeBoss: {
			Names: []string{"Throne Room", "Dark Sanctum", "Evil Chamber", "Demon's Lair"},
			Descriptions: []string{
				"A throne room of dark stone, where evil power radiates from every corner.",
				"A dark sanctum where ancient evil has made its home.",
				"An evil chamber filled with the stench of corruption and death.",
				"A demon's lair where the very air seems to pulse with malevolent energy.",
			},
		},
		entities.RoomTypeTrap: {
			Names: []string{"Trapped Corridor", "Deadly Passage", "Pit Room", "Spike Chamber"},
			Descriptions: []string{
				"A corridor filled with deadly traps and hidden dangers.",
				"A passage where death lurks around every corner.",
				"A room with a deep pit in the center, surrounded by treacherous footing.",
				"A chamber with walls lined with deadly spikes and mechanisms.",
			},
		},
	}
}

func defaultRoomContents() map[entities.RoomType][]string {
	return map[entities.RoomType][]string{
		entities.RoomTypeEntrance: {"Torch", "Ancient Runes", "Dust"},
		entities.RoomTypeCorridor: {"Torch", "Cobwebs", "Stone Debris"},
		entities.RoomTypeChamber:  {"Pillars", "Ancient Tapestries", "Dust"},
		entities.RoomTypeTreasury: {"Gold Coins", "Precious Gems", "Ancient Artifacts"},
		entities.RoomTypeBoss:     {"Throne", "Dark Altar", "Evil Symbols"},
		entities.RoomTypeTrap:     {"Pressure Plates", "Hidden Mechanisms", "Deadly Spikes"},
	}
}

func defaultMonsters() map[string]entities.Monster {
	return map[string]entities.Monster{
		"goblin": {
			Name:        "Goblin",
			MonsterType: "Humanoid",
			Level:       1,
			HitPoints:   8,
			ArmorClass:  6,
			Attacks: []entities.Attack{
				{Name: "Short Sword", Damage: "1d6", AttackBonus: 0, Range: "melee"},
			},
			SpecialAbilities: []string{"Darkvision"},
			LootTable:        []string{"Short Sword", "Leather Armor", "Gold Coins"},
		},
		"orc": {
			Name:        "Orc",
			MonsterType: "Humanoid",
			Level:       2,
			HitPoints:   15,
			ArmorClass:  7,
			Attacks: []entities.Attack{
				{Name: "Battle Axe", Damage: "1d8", AttackBonus: 1, Range: "melee"},
			},
			SpecialAbilities: []string{"Darkvision", "Aggressive"},
			LootTable:        []string{"Battle Axe", "Chain Mail", "Gold Coins"},
		},
		"skeleton": {
			Name:        "Skeleton",
			MonsterType: "Undead",
			Level:       1,
			HitPoints:   12,
			ArmorClass:  7,
			Attacks: []entities.Attack{
				{Name: "Short Sword", Damage: "1d6", AttackBonus: 0, Range: "melee"},
			},
			SpecialAbilities: []string{"Undead", "Immune to Poison"},
			LootTable:        []string{"Short Sword", "Bone Fragments"},
		},
		"troll": {
			Name:        "Troll",
			MonsterType: "Giant",
			Level:       5,
			HitPoints:   35,
			ArmorClass:  4,
			Attacks: []entities.Attack{
				{Name: "Claw", Damage: "1d6+1", AttackBonus: 2, Range: "melee"},
			},
			SpecialAbilities: []string{"Regeneration", "Darkvision"},
			LootTable:        []string{"Troll Hide", "Gold Coins", "Magic Items"},
		},
	}
}

func defaultTreasures() map[entities.Rarity]TreasureTemplate {
	return map[entities.Rarity]TreasureTemplate{
		entities.RarityCommon: {
			Items:   []string{"Gold Coins", "Silver Coins", "Copper Coins", "Gemstone", "Potion of Healing"},
			GoldMin: 10,
			GoldMax: 50,
		},
		entities.RarityUncommon: {
			Items:   []string{"Magic Ring", "Scroll of Fireball", "Potion of Invisibility", "Magic Sword", "Wand of Magic Missile"},
			GoldMin: 50,
			GoldMax: 200,
		},
		entities.RarityRare: {
			Items:   []string{"Dragon's Hoard", "Staff of Power", "Ring of Invisibility", "Crystal Ball", "Flying Carpet"},
			GoldMin: 200,
			GoldMax: 1000,
		},
	}
}

func defaultThemeSuffixes() map[string]string {
	return map[string]string{
		"crypt":   " The air is thick with the stench of decay, and ancient bones litter the floor.",
		"tower":   " Magical energy crackles through the air, and strange runes glow on the walls.",
		"cave":    " Stalactites hang from the ceiling like stone teeth, and water drips from above.",
		"temple":  " Religious symbols are carved into every surface, and the air hums with divine power.",
		"mansion": " Elegant furnishings are covered in dust, and portraits of long-dead nobles watch from the walls.",
	}
}

// Format arguments: size (string), level (int).
func defaultThemeDescriptions() map[string]string {
	return map[string]string{
		"crypt":   "An ancient %s crypt of level %d, where the dead do not rest peacefully.",
		"tower":   "A %s wizard's tower of level %d, filled with arcane mysteries and magical dangers.",
		"cave":    "A %s cave system of level %d, home to creatures that shun the light.",
		"temple":  "A %s temple of level %d, where dark rituals were once performed.",
		"mansion": "A %s haunted mansion of level %d, where the past refuses to stay buried.",
	}
}

func defaultLocationFlavor() map[string][]string {
	return map[string][]string{
		"forest":  {"Rustling Leaves", "Dense Undergrowth"},
		"cave":    {"Echoing Sounds", "Stalactites"},
		"city":    {"Narrow Alleys", "Crowded Streets"},
		"dungeon": {"Dark Corridors", "Ancient Stone"},
	}
}
