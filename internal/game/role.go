package game

import "strings"

// Role is the lane the tracked player queued for. It decides which of the
// ten champion slot columns on a record are live.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleADC     Role = "adc"
	RoleSupport Role = "support"
)

// Side distinguishes the tracked player's team slots from the enemy's.
type Side string

const (
	SideMine  Side = "my"
	SideEnemy Side = "enemy"
)

// Slot describes one live champion column for a role. Exactly one slot per
// role is the tracked player's own champion.
type Slot struct {
	Name    string
	Side    Side
	Tracked bool
}

// slotSchema is the authoritative role -> live slots mapping. The record
// store validates against it, the filter engine matches champions through
// it, and the leaderboard reads the tracked champion from it.
var slotSchema = map[Role][]Slot{
	RoleTop: {
		{Name: "my_top", Side: SideMine, Tracked: true},
		{Name: "my_jungle", Side: SideMine},
		{Name: "enemy_top", Side: SideEnemy},
		{Name: "enemy_jungle", Side: SideEnemy},
	},
	RoleJungle: {
		{Name: "my_jungle", Side: SideMine, Tracked: true},
		{Name: "my_mid", Side: SideMine},
		{Name: "my_support", Side: SideMine},
		{Name: "enemy_jungle", Side: SideEnemy},
		{Name: "enemy_mid", Side: SideEnemy},
		{Name: "enemy_support", Side: SideEnemy},
	},
	RoleMid: {
		{Name: "my_mid", Side: SideMine, Tracked: true},
		{Name: "my_jungle", Side: SideMine},
		{Name: "enemy_mid", Side: SideEnemy},
		{Name: "enemy_jungle", Side: SideEnemy},
	},
	RoleADC: {
		{Name: "my_adc", Side: SideMine, Tracked: true},
		{Name: "my_support", Side: SideMine},
		{Name: "enemy_adc", Side: SideEnemy},
		{Name: "enemy_support", Side: SideEnemy},
	},
	RoleSupport: {
		{Name: "my_support", Side: SideMine, Tracked: true},
		{Name: "my_adc", Side: SideMine},
		{Name: "my_jungle", Side: SideMine},
		{Name: "enemy_support", Side: SideEnemy},
		{Name: "enemy_adc", Side: SideEnemy},
		{Name: "enemy_jungle", Side: SideEnemy},
	},
}

// allSlotNames lists every champion slot column in a stable order.
var allSlotNames = []string{
	"my_top", "my_jungle", "my_mid", "my_adc", "my_support",
	"enemy_top", "enemy_jungle", "enemy_mid", "enemy_adc", "enemy_support",
}

// ParseRole normalizes and validates a role tag.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := slotSchema[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Slots returns the live slots for a role in schema order.
func Slots(role Role) ([]Slot, error) {
	slots, ok := slotSchema[role]
	if !ok {
		return nil, ErrInvalidRole
	}
	return slots, nil
}

// SideSlots returns the live slots for one side of the map.
func SideSlots(role Role, side Side) ([]Slot, error) {
	slots, err := Slots(role)
	if err != nil {
		return nil, err
	}
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Side == side {
			out = append(out, s)
		}
	}
	return out, nil
}

// TrackedSlot returns the slot holding the tracked player's champion.
func TrackedSlot(role Role) (Slot, error) {
	slots, err := Slots(role)
	if err != nil {
		return Slot{}, err
	}
	for _, s := range slots {
		if s.Tracked {
			return s, nil
		}
	}
	// unreachable: every schema entry marks exactly one tracked slot
	return Slot{}, ErrInvalidRole
}
