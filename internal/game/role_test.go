package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_PerRole(t *testing.T) {
	cases := []struct {
		role    Role
		tracked string
		mine    []string
		enemy   []string
	}{
		{RoleTop, "my_top", []string{"my_top", "my_jungle"}, []string{"enemy_top", "enemy_jungle"}},
		{RoleJungle, "my_jungle", []string{"my_jungle", "my_mid", "my_support"}, []string{"enemy_jungle", "enemy_mid", "enemy_support"}},
		{RoleMid, "my_mid", []string{"my_mid", "my_jungle"}, []string{"enemy_mid", "enemy_jungle"}},
		{RoleADC, "my_adc", []string{"my_adc", "my_support"}, []string{"enemy_adc", "enemy_support"}},
		{RoleSupport, "my_support", []string{"my_support", "my_adc", "my_jungle"}, []string{"enemy_support", "enemy_adc", "enemy_jungle"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			mine, err := SideSlots(tc.role, SideMine)
			require.NoError(t, err)
			enemy, err := SideSlots(tc.role, SideEnemy)
			require.NoError(t, err)

			var mineNames, enemyNames []string
			for _, s := range mine {
				mineNames = append(mineNames, s.Name)
			}
			for _, s := range enemy {
				enemyNames = append(enemyNames, s.Name)
			}
			assert.Equal(t, tc.mine, mineNames)
			assert.Equal(t, tc.enemy, enemyNames)

			tracked, err := TrackedSlot(tc.role)
			require.NoError(t, err)
			assert.Equal(t, tc.tracked, tracked.Name)
			assert.Equal(t, SideMine, tracked.Side)
		})
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" ADC ")
	require.NoError(t, err)
	assert.Equal(t, RoleADC, r)

	_, err = ParseRole("feeder")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = Slots(Role("feeder"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestTrackedChampion_UnknownRole(t *testing.T) {
	g := GameRecord{Role: "bogus"}
	assert.Equal(t, "", g.TrackedChampion())
}
