// Package holobots holds the static Holobot template data: base combat stats
// keyed by name, read-only to the rest of the app.
package holobots

import "strings"

// Stats is a Holobot's base template. Attribute upgrades and bond bonuses are
// computed on top of these values, never written back.
type Stats struct {
	Name        string
	Attack      int
	Defense     int
	Speed       int
	MaxHealth   int
	Special     int
	SpecialMove string
}

var templates = map[string]Stats{
	"ace":    {Name: "Ace", Attack: 150, Defense: 120, Speed: 150, MaxHealth: 150, Special: 100, SpecialMove: "1st Strike"},
	"kuma":   {Name: "Kuma", Attack: 185, Defense: 130, Speed: 120, MaxHealth: 180, Special: 110, SpecialMove: "Bear Claw"},
	"shadow": {Name: "Shadow", Attack: 170, Defense: 140, Speed: 140, MaxHealth: 160, Special: 120, SpecialMove: "Shadow Strike"},
	"era":    {Name: "Era", Attack: 140, Defense: 160, Speed: 130, MaxHealth: 165, Special: 115, SpecialMove: "Time Warp"},
	"hare":   {Name: "Hare", Attack: 145, Defense: 110, Speed: 190, MaxHealth: 140, Special: 105, SpecialMove: "Counter Claw"},
	"tora":   {Name: "Tora", Attack: 175, Defense: 125, Speed: 160, MaxHealth: 155, Special: 110, SpecialMove: "Tiger Pounce"},
	"wake":   {Name: "Wake", Attack: 155, Defense: 145, Speed: 135, MaxHealth: 170, Special: 125, SpecialMove: "Tidal Crash"},
	"gama":   {Name: "Gama", Attack: 160, Defense: 170, Speed: 110, MaxHealth: 190, Special: 100, SpecialMove: "Stone Guard"},
	"ken":    {Name: "Ken", Attack: 180, Defense: 115, Speed: 165, MaxHealth: 145, Special: 115, SpecialMove: "Blade Dance"},
	"kurai":  {Name: "Kurai", Attack: 165, Defense: 150, Speed: 125, MaxHealth: 175, Special: 130, SpecialMove: "Dark Pulse"},
	"tsuin":  {Name: "Tsuin", Attack: 150, Defense: 135, Speed: 155, MaxHealth: 160, Special: 140, SpecialMove: "Twin Mirage"},
	"wolf":   {Name: "Wolf", Attack: 172, Defense: 128, Speed: 170, MaxHealth: 150, Special: 108, SpecialMove: "Lunar Howl"},
}

// ByName looks up a template by name, case-insensitive.
// The second return is false for unknown Holobots.
func ByName(name string) (Stats, bool) {
	s, ok := templates[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Names returns every known Holobot name in a stable order.
func Names() []string {
	return []string{"ace", "era", "gama", "hare", "ken", "kuma", "kurai", "shadow", "tora", "tsuin", "wake", "wolf"}
}

// RankForLevel maps a Holobot's level to its rank tier.
func RankForLevel(level int) string {
	switch {
	case level >= 40:
		return "Legendary"
	case level >= 30:
		return "Elite"
	case level >= 20:
		return "Rare"
	case level >= 10:
		return "Champion"
	default:
		return "Common"
	}
}

// BaseStat returns the template value backing an attribute key
// (hp|attack|defense|speed|special). Health upgrades scale off MaxHealth.
func (s Stats) BaseStat(attribute string) int {
	switch strings.ToLower(attribute) {
	case "hp":
		return s.MaxHealth
	case "attack":
		return s.Attack
	case "defense":
		return s.Defense
	case "speed":
		return s.Speed
	case "special":
		return s.Special
	default:
		return 0
	}
}
