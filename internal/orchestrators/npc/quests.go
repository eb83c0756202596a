package npc

import (
	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

const questOfferChance = 0.2

// Quest templates by archetype. Archetypes without a template borrow the
// merchant's.
var questTemplates = map[string]entities.Quest{
	typeSage: {
		Title:       "The Lost Tome",
		Description: "An ancient book of knowledge has been stolen from the library. Can you help me recover it?",
		Objectives:  []string{"Find the thief", "Recover the tome", "Return it to the sage"},
		Reward: entities.QuestReward{
			Experience: 100,
			Gold:       50,
			Items:      []string{"Scroll of Knowledge"},
		},
	},
	typeMerchant: {
		Title:       "Supply Run",
		Description: "My caravan was attacked on the road. I need someone to escort my goods safely.",
		Objectives:  []string{"Escort the caravan", "Defeat bandits", "Deliver goods"},
		Reward: entities.QuestReward{
			Experience: 80,
			Gold:       75,
			Items:      []string{"Merchant's Favor"},
		},
	},
	typeGuard: {
		Title:       "Patrol Duty",
		Description: "We're short on guards. Can you help patrol the city walls for a day?",
		Objectives:  []string{"Complete patrol route", "Report suspicious activity", "Return to guard captain"},
		Reward: entities.QuestReward{
			Experience: 60,
			Gold:       40,
			Items:      []string{"Guard's Badge"},
		},
	},
}

// questFor returns an independent copy of the archetype's quest template,
// scaled to the player's level.
func questFor(npcType string, playerLevel int) *entities.Quest {
	tmpl, ok := questTemplates[npcType]
	if !ok {
		tmpl = questTemplates[typeMerchant]
	}

	quest := tmpl
	quest.Objectives = append([]string(nil), tmpl.Objectives...)
	quest.Reward.Items = append([]string(nil), tmpl.Reward.Items...)
	quest.Difficulty = playerLevel
	return &quest
}
