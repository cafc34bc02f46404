package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DukeEngine/internal/game/core"
)

func TestRoster_EveryUnitBuilds(t *testing.T) {
	for _, name := range Roster() {
		t.Run(name, func(t *testing.T) {
			var built *Tile
			require.NotPanics(t, func() {
				var err error
				built, err = ByName(name)
				require.NoError(t, err)
			})
			assert.Equal(t, name, built.Name())
			assert.NotEmpty(t, built.SideA().Actions())
			assert.NotEmpty(t, built.SideB().Actions())
			assert.Equal(t, core.HCenter, built.SideA().UnitOffset().X)
		})
	}
}

func TestRoster_Sorted(t *testing.T) {
	names := Roster()
	require.Len(t, names, 13)
	assert.Equal(t, "Assassin", names[0])
	assert.Equal(t, "Wizard", names[len(names)-1])
}

func TestByName_Unknown(t *testing.T) {
	_, err := ByName("Dragon")
	assert.EqualError(t, err, `unknown unit "Dragon"`)
}

func TestBagFromNames(t *testing.T) {
	tiles, err := BagFromNames(DefaultStartingBagNames)
	require.NoError(t, err)
	assert.Len(t, tiles, len(DefaultStartingBagNames))

	_, err = BagFromNames([]string{"Footman", "Nope"})
	assert.Error(t, err)
}

func TestDuke_IsDuke(t *testing.T) {
	assert.True(t, Duke().IsDuke())
	assert.False(t, Wizard().IsDuke())
}

func TestLongbowman_UnitBelowCenter(t *testing.T) {
	lb := Longbowman()
	assert.Equal(t, core.Bottom, lb.SideA().CenterOffset())

	a, ok := lb.SideA().ActionFromCoordinates(core.NewCoordinate(3, 3), core.NewCoordinate(3, 2))
	require.True(t, ok)
	assert.Equal(t, Move, a)

	a, ok = lb.SideB().ActionFromCoordinates(core.NewCoordinate(3, 4), core.NewCoordinate(3, 1))
	require.True(t, ok)
	assert.Equal(t, Strike, a)
}

func TestGeneral_FlippedSideCommands(t *testing.T) {
	g := General()
	assert.Len(t, g.SideB().Commands(), 5)
	assert.Empty(t, g.SideA().Commands())
}
