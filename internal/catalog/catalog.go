// Package catalog holds the read-only template data used by content
// generation: room-type template pools, monster stat blocks, treasure
// rarity tiers, and theme/location flavor text.
//
// A Catalog is immutable after New; accessors hand out copies so callers
// can never alias the shared templates.
package catalog

import (
	"fmt"
	"strings"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

// RoomTemplate is a pool of display names and descriptions for one room type
type RoomTemplate struct {
	Names        []string
	Descriptions []string
}

// TreasureTemplate is the item pool and gold range for one rarity tier
type TreasureTemplate struct {
	Items   []string
	GoldMin int
	GoldMax int
}

// Catalog is the shared template store
type Catalog struct {
	roomTemplates map[entities.RoomType]RoomTemplate
	roomContents  map[entities.RoomType][]string

	// monsterOrder keeps selection deterministic under a pinned seed.
	monsterOrder []string
	monsters     map[string]entities.Monster

	treasures map[entities.Rarity]TreasureTemplate

	themeSuffixes     map[string]string
	themeDescriptions map[string]string
	locationFlavor    map[string][]string
}

// New builds the default catalog
func New() *Catalog {
	return &Catalog{
		roomTemplates:     defaultRoomTemplates(),
		roomContents:      defaultRoomContents(),
		monsterOrder:      defaultMonsterOrder,
		monsters:          defaultMonsters(),
		treasures:         defaultTreasures(),
		themeSuffixes:     defaultThemeSuffixes(),
		themeDescriptions: defaultThemeDescriptions(),
		locationFlavor:    defaultLocationFlavor(),
	}
}

// RoomTemplate returns the template pool for a room type. Unknown types fall
// back to the chamber pool.
func (c *Catalog) RoomTemplate(roomType entities.RoomType) RoomTemplate {
	tmpl, ok := c.roomTemplates[roomType]
	if !ok {
		tmpl = c.roomTemplates[entities.RoomTypeChamber]
	}
	return RoomTemplate{
		Names:        append([]string(nil), tmpl.Names...),
		Descriptions: append([]string(nil), tmpl.Descriptions...),
	}
}

// RoomContents returns the base prop labels for a room type
func (c *Catalog) RoomContents(roomType entities.RoomType) []string {
	return append([]string(nil), c.roomContents[roomType]...)
}

// EligibleMonsters returns copies of every monster template whose level is
// at most maxLevel, in stable catalog order.
func (c *Catalog) EligibleMonsters(maxLevel int) []entities.Monster {
	var out []entities.Monster
	for _, name := range c.monsterOrder {
		m := c.monsters[name]
		if m.Level <= maxLevel {
			out = append(out, m.Clone())
		}
	}
	return out
}

// BaseMonster returns a copy of the fallback monster template, used when no
// template qualifies for the requested difficulty.
func (c *Catalog) BaseMonster() entities.Monster {
	base := c.monsters[baseMonsterName]
	return base.Clone()
}

// TreasureTemplate returns the template for a rarity tier. Unknown rarities
// fall back to common.
func (c *Catalog) TreasureTemplate(rarity entities.Rarity) TreasureTemplate {
	tmpl, ok := c.treasures[rarity]
	if !ok {
		tmpl = c.treasures[entities.RarityCommon]
	}
	return TreasureTemplate{
		Items:   append([]string(nil), tmpl.Items...),
		GoldMin: tmpl.GoldMin,
		GoldMax: tmpl.GoldMax,
	}
}

// ThemeSuffix returns the flavor sentence appended to room descriptions for
// a theme. Unknown themes get an empty suffix.
func (c *Catalog) ThemeSuffix(theme string) string {
	return c.themeSuffixes[strings.ToLower(theme)]
}

// DungeonDescription returns the per-theme descriptive sentence for a
// dungeon, with a generic fallback for unknown themes.
func (c *Catalog) DungeonDescription(theme, size string, level int) string {
	format, ok := c.themeDescriptions[strings.ToLower(theme)]
	if !ok {
		return fmt.Sprintf("A %s dungeon of level %d.", size, level)
	}
	return fmt.Sprintf(format, size, level)
}

// Environment returns the flavor list for an encounter location. Unknown
// locations get the default list.
func (c *Catalog) Environment(location string) []string {
	flavor, ok := c.locationFlavor[strings.ToLower(location)]
	if !ok {
		flavor = defaultEnvironment
	}
	return append([]string(nil), flavor...)
}
