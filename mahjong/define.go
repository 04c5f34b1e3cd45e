package mahjong

import "errors"

// 花色
type Suit int

const (
	SuitUndefined  Suit = iota - 1
	SuitBamboo          // 条
	SuitCircles         // 筒
	SuitCharacters      // 万
	SuitWind            // 风牌
	SuitDragon          // 箭牌
	SuitPretty          // 花牌+季牌
	SuitEnd
	SuitBegin = SuitBamboo
)

var suitNames = [SuitEnd]string{"bamboo", "circles", "characters", "wind", "dragon", "pretty"}

func (s Suit) String() string {
	if s < SuitBegin || s >= SuitEnd {
		return "undefined"
	}
	return suitNames[s]
}

// 数牌
func (s Suit) IsNumbered() bool {
	return s >= SuitBamboo && s <= SuitCharacters
}

// 字牌
func (s Suit) IsHonor() bool {
	return s == SuitWind || s == SuitDragon
}

// 门风
type Wind string

const (
	WindEast  Wind = "east"
	WindSouth Wind = "south"
	WindWest  Wind = "west"
	WindNorth Wind = "north"
)

var Winds = []Wind{WindEast, WindSouth, WindWest, WindNorth}

func (w Wind) IsValid() bool {
	switch w {
	case WindEast, WindSouth, WindWest, WindNorth:
		return true
	}
	return false
}

const (
	DragonRed   = "red"
	DragonGreen = "green"
	DragonWhite = "white"

	PrettyFlowers = "flowers"
	PrettySeasons = "seasons"
)

var (
	dragonNames = []string{DragonRed, DragonGreen, DragonWhite}
	prettyNames = []string{PrettyFlowers, PrettySeasons}
)

const (
	PlayerCount  = 4
	MaxHandCount = 14

	MaxPoint       = 9 // 数牌最大点数
	MaxPrettyPoint = 4 // 花牌/季牌最大点数

	SameTileCount   = 4 // 普通牌每种张数
	SamePrettyCount = 1 // 花牌每种张数
)

// 牌组类型
type GroupType int

const (
	GroupTypeNone GroupType = iota
	GroupTypePair
	GroupTypeChi
	GroupTypePong
	GroupTypeKang
)

var groupTypeNames = map[GroupType]string{
	GroupTypeNone: "none",
	GroupTypePair: "pair",
	GroupTypeChi:  "chi",
	GroupTypePong: "pong",
	GroupTypeKang: "kang",
}

func (g GroupType) String() string {
	if name, ok := groupTypeNames[g]; ok {
		return name
	}
	return "none"
}

// 牌组需要的张数
func (g GroupType) Size() int {
	switch g {
	case GroupTypePair:
		return 2
	case GroupTypeChi, GroupTypePong:
		return 3
	case GroupTypeKang:
		return 4
	}
	return 0
}

var (
	ErrInvalidTile  = errors.New("invalid tile")
	ErrTileOverflow = errors.New("tile overflow")
	ErrInvalidGroup = errors.New("invalid group")
	ErrHandTooLarge = errors.New("hand too large")
)
