package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_mjrule/mahjong"
	"github.com/stretchr/testify/require"
)

func TestParseTile(t *testing.T) {
	testCases := []struct {
		name string
		want mahjong.Tile
	}{
		{"1bamboo", mahjong.MakeTile(mahjong.SuitBamboo, 1)},
		{"9circles", mahjong.MakeTile(mahjong.SuitCircles, 9)},
		{" 5Characters ", mahjong.MakeTile(mahjong.SuitCharacters, 5)},
		{"east", mahjong.TileEast},
		{"north", mahjong.TileNorth},
		{"white", mahjong.TileWhite},
		{"flowers2", mahjong.PrettyTile(mahjong.PrettyFlowers, 2)},
		{"seasons4", mahjong.PrettyTile(mahjong.PrettySeasons, 4)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mahjong.ParseTile(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.True(t, got.IsValid())
		})
	}
}

func TestParseTileInvalid(t *testing.T) {
	for _, name := range []string{"", "0bamboo", "10circles", "flowers5", "seasons", "purple", "bamboo"} {
		_, err := mahjong.ParseTile(name)
		if !errors.Is(err, mahjong.ErrInvalidTile) {
			t.Errorf("ParseTile(%q) err = %v, want ErrInvalidTile", name, err)
		}
	}
}

func TestTileNameRoundTrip(t *testing.T) {
	tiles := mustTiles(t, "1bamboo,9characters,south,green,seasons3")
	require.Equal(t, "1bamboo,9characters,south,green,seasons3", mahjong.TilesName(tiles))
}

func TestSortTiles(t *testing.T) {
	tiles := mustTiles(t, "3circles,red,1bamboo,east,3bamboo,flowers1")
	sorted := mahjong.SortTiles(tiles)
	require.Equal(t, mustTiles(t, "east,red,1bamboo,flowers1,3bamboo,3circles"), sorted)
	// 原切片不变
	require.Equal(t, mustTiles(t, "3circles,red,1bamboo,east,3bamboo,flowers1"), tiles)
}

func TestTileSetInvariant(t *testing.T) {
	_, err := mahjong.NewTileSet(mahjong.GroupTypeChi, mustTiles(t, "1bamboo,2circles,3bamboo"), false)
	require.ErrorIs(t, err, mahjong.ErrInvalidGroup)

	_, err = mahjong.NewTileSet(mahjong.GroupTypePong, mustTiles(t, "red,red,green"), false)
	require.ErrorIs(t, err, mahjong.ErrInvalidGroup)

	_, err = mahjong.NewTileSet(mahjong.GroupTypeKang, mustTiles(t, "red,red,red"), false)
	require.ErrorIs(t, err, mahjong.ErrInvalidGroup)

	set, err := mahjong.NewTileSet(mahjong.GroupTypeChi, mustTiles(t, "3bamboo,1bamboo,2bamboo"), true)
	require.NoError(t, err)
	require.True(t, set.Declared())
	require.Equal(t, "chi*[3bamboo,1bamboo,2bamboo]", set.String())
}

func TestHonorSet(t *testing.T) {
	testCases := []struct {
		tiles string
		wind  mahjong.Wind
		want  bool
	}{
		{"red,red,red", mahjong.WindNorth, true},
		{"east,east,east", mahjong.WindWest, true},
		{"west,west,west", mahjong.WindWest, true},
		{"west,west,west", mahjong.WindSouth, false},
		{"5bamboo,5bamboo,5bamboo", mahjong.WindEast, false},
	}
	for _, tc := range testCases {
		set, err := mahjong.NewTileSet(mahjong.GroupTypePong, mustTiles(t, tc.tiles), false)
		require.NoError(t, err)
		if got := set.IsHonorOf(tc.wind); got != tc.want {
			t.Errorf("IsHonorOf(%s, %s) = %v, want %v", tc.tiles, tc.wind, got, tc.want)
		}
	}
}

func TestHandValidate(t *testing.T) {
	hand := mahjong.NewHand(mustTiles(t, "1bamboo,1bamboo,1bamboo,1bamboo")...)
	require.NoError(t, hand.Validate())

	hand.AddTile(mahjong.MakeTile(mahjong.SuitBamboo, 1))
	require.ErrorIs(t, hand.Validate(), mahjong.ErrTileOverflow)
	require.True(t, hand.RemoveTile(mahjong.MakeTile(mahjong.SuitBamboo, 1)))
	require.NoError(t, hand.Validate())

	hand.AddTile(mahjong.MakeSpecialTile(mahjong.SuitDragon, 0, "blue"))
	require.ErrorIs(t, hand.Validate(), mahjong.ErrInvalidTile)

	pretty := mahjong.NewHand(mustTiles(t, "flowers1,flowers1")...)
	require.ErrorIs(t, pretty.Validate(), mahjong.ErrTileOverflow)

	big := mahjong.NewHand(mustTiles(t, "1bamboo,2bamboo,3bamboo,4bamboo,5bamboo,6bamboo,7bamboo,8bamboo,9bamboo,1circles,2circles,3circles,4circles,5circles,6circles")...)
	require.ErrorIs(t, big.Validate(), mahjong.ErrHandTooLarge)
}

func TestUnknownTileNeverMatches(t *testing.T) {
	odd := mahjong.MakeSpecialTile(mahjong.SuitUndefined, 1, "joker")
	blue := mahjong.MakeSpecialTile(mahjong.SuitDragon, 0, "blue")
	hand := mahjong.NewHand(odd, odd, odd, odd, blue, blue, blue)
	require.False(t, mahjong.DetectRun(hand))
	require.False(t, mahjong.DetectTriplet(hand))
	require.False(t, mahjong.DetectQuad(hand))
	require.Zero(t, mahjong.DetectAll(hand))

	// 点数连续但超出范围，顺子被拒绝
	high := mahjong.NewHand(mahjong.MakeTile(mahjong.SuitBamboo, 10), mahjong.MakeTile(mahjong.SuitBamboo, 11), mahjong.MakeTile(mahjong.SuitBamboo, 12))
	require.False(t, mahjong.DetectRun(high))
	require.Empty(t, high.Chis())
}
