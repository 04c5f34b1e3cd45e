package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_mjrule/mahjong"
	"github.com/stretchr/testify/require"
)

func TestScoreManualHands(t *testing.T) {
	m, err := mahjong.NewManual("testdata/hands.yaml")
	require.NoError(t, err)
	names := m.Names()
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, err := m.Player(name)
			require.NoError(t, err)
			require.NoError(t, p.Hand.Validate())
			got := mahjong.CalculateScore(p)
			if want := m.Expect(name); got != want {
				t.Errorf("CalculateScore(%s) = %d, want %d (%s)", name, got, want, mahjong.DefaultScorelator.Evaluate(p))
			}
		})
	}
}

func TestManualUnknownHand(t *testing.T) {
	m, err := mahjong.NewManual("testdata/hands.yaml")
	require.NoError(t, err)
	_, err = m.Player("missing")
	require.Error(t, err)

	_, err = mahjong.NewManual("testdata/missing.yaml")
	require.Error(t, err)
}

func TestScoreDragonPong(t *testing.T) {
	p := mahjong.NewPlayer(mahjong.WindSouth, mustTiles(t, "red,red,red")...)
	require.True(t, mahjong.DetectTriplet(p.Hand))

	detail := mahjong.DefaultScorelator.Evaluate(p)
	require.Nil(t, detail.Special)
	require.Equal(t, 4, detail.Base)
	require.Equal(t, 1, detail.Doubles)
	require.Equal(t, 8, detail.Total)
	require.Zero(t, p.Score)

	require.Equal(t, 8, mahjong.CalculateScore(p))
	require.Equal(t, 8, p.Score)
	// 分数会累加
	require.Equal(t, 8, mahjong.CalculateScore(p))
	require.Equal(t, 16, p.Score)
}

func TestScoreSpecialOverridesGroups(t *testing.T) {
	p := mahjong.NewPlayer(mahjong.WindEast, mustTiles(t, thirteenOrphans)...)
	kang, err := mahjong.NewTileSet(mahjong.GroupTypeKang, mustTiles(t, "red,red,red,red"), false)
	require.NoError(t, err)
	require.NoError(t, p.Hand.Commit(kang))

	detail := mahjong.DefaultScorelator.Evaluate(p)
	require.NotNil(t, detail.Special)
	require.Equal(t, mahjong.ThirteenOrphans, detail.Special.Name)
	require.Equal(t, 500, detail.Total)
	require.Equal(t, []mahjong.ScoreItem{{Reason: mahjong.ScoreReasonSpecial, Value: 500}}, detail.Items)
}

func TestScoreChiIsZero(t *testing.T) {
	p := mahjong.NewPlayer(mahjong.WindEast, mustTiles(t, "2bamboo,3bamboo,4bamboo,9circles")...)
	require.True(t, mahjong.DetectRun(p.Hand))
	require.Zero(t, mahjong.CalculateScore(p))
}

func TestScoreCompoundDoubles(t *testing.T) {
	// 暗刻中 4 + 暗杠东 16 = 20，两次加倍 x4
	p := mahjong.NewPlayer(mahjong.WindNorth, mustTiles(t, "red,red,red,east,east,east,east")...)
	require.Equal(t, 2, mahjong.DetectAll(p.Hand))

	detail := mahjong.DefaultScorelator.Evaluate(p)
	require.Equal(t, 20, detail.Base)
	require.Equal(t, 2, detail.Doubles)
	require.Equal(t, 80, detail.Total)
}

func TestScoreEmptyHand(t *testing.T) {
	p := mahjong.NewPlayer(mahjong.WindEast)
	require.Zero(t, mahjong.CalculateScore(p))
	require.Zero(t, p.Score)
}

func TestScorePlayerWithoutHand(t *testing.T) {
	p := &mahjong.Player{Wind: mahjong.WindEast}
	require.Zero(t, mahjong.CalculateScore(p))
	require.Zero(t, p.Score)
	require.Zero(t, mahjong.DefaultScorelator.Evaluate(p).Total)
	require.Zero(t, mahjong.CalculateScore(nil))
}

func TestScoreSequentialSameSuit(t *testing.T) {
	rule := mahjong.DefaultRule()
	p := mahjong.NewPlayer(mahjong.WindEast, mustTiles(t, "flowers1,2bamboo,3circles")...)

	require.Equal(t, 8, mahjong.NewScorelator(rule, nil).Evaluate(p).Total)

	rule.SequentialSameSuit = true
	require.Equal(t, 4, mahjong.NewScorelator(rule, nil).Evaluate(p).Total)
}

func TestScoreReasonString(t *testing.T) {
	require.Equal(t, "honor_pong", mahjong.ScoreReasonHonorPong.String())
	require.True(t, mahjong.ScoreReasonAllSequential.IsDouble())
	require.False(t, mahjong.ScoreReasonKang.IsDouble())
	require.Equal(t, "unknown", mahjong.ScoreReason(99).String())
}
