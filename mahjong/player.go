package mahjong

type Player struct {
	Wind  Wind
	Hand  *Hand
	Score int // 累计得分
}

func NewPlayer(wind Wind, tiles ...Tile) *Player {
	return &Player{
		Wind: wind,
		Hand: NewHand(tiles...),
	}
}

func (p *Player) AddScore(score int) {
	p.Score += score
}
