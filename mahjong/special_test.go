package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_mjrule/mahjong"
	"github.com/stretchr/testify/require"
)

const thirteenOrphans = "1bamboo,9bamboo,1circles,9circles,1characters,9characters,east,south,west,north,red,green,white"

func TestMatchSpecialHand(t *testing.T) {
	for _, sh := range mahjong.DefaultCatalog().Hands() {
		t.Run(sh.Name, func(t *testing.T) {
			tiles := sh.RequiredTiles()
			// 倒序放入手牌，匹配与顺序无关
			reversed := make([]mahjong.Tile, len(tiles))
			for i, tile := range tiles {
				reversed[len(tiles)-1-i] = tile
			}
			got := mahjong.MatchSpecialHand(mahjong.NewHand(reversed...))
			require.NotNil(t, got)
			require.Equal(t, sh.Name, got.Name)
			require.Equal(t, sh.Score, got.Score)
		})
	}
}

func TestMatchSpecialHandOffByOne(t *testing.T) {
	tiles := mustTiles(t, thirteenOrphans)
	require.NotNil(t, mahjong.MatchSpecialHand(mahjong.NewHand(tiles...)))

	// 多一张
	extra := append(mustTiles(t, thirteenOrphans), mahjong.TileEast)
	require.Nil(t, mahjong.MatchSpecialHand(mahjong.NewHand(extra...)))

	// 少一张
	require.Nil(t, mahjong.MatchSpecialHand(mahjong.NewHand(tiles[1:]...)))

	// 换一张
	swapped := mustTiles(t, thirteenOrphans)
	swapped[0] = mahjong.MakeTile(mahjong.SuitBamboo, 2)
	require.Nil(t, mahjong.MatchSpecialHand(mahjong.NewHand(swapped...)))
}

func TestMatchSpecialHandNineGates(t *testing.T) {
	hand := mahjong.NewHand(mustTiles(t, "1circles,1circles,1circles,2circles,3circles,4circles,5circles,6circles,7circles,8circles,9circles,9circles,9circles")...)
	got := mahjong.MatchSpecialHand(hand)
	require.NotNil(t, got)
	require.Equal(t, mahjong.NineGatesCircles, got.Name)

	hand.AddTile(mahjong.MakeTile(mahjong.SuitCircles, 5))
	require.Nil(t, mahjong.MatchSpecialHand(hand))
}

func TestCatalogOrder(t *testing.T) {
	pair := mustTiles(t, "red,red")
	catalog := mahjong.NewCatalog(
		mahjong.NewSpecialHand("first", 10, pair),
		mahjong.NewSpecialHand("second", 20, pair),
	)
	got := catalog.Match(mahjong.NewHand(pair...))
	require.NotNil(t, got)
	require.Equal(t, "first", got.Name)
	require.Equal(t, 2, catalog.Len())
}
