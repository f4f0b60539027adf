package game

// Player tracks the trader's running economy across negotiations.
type Player struct {
	Name    string
	Balance int64
	Profit  int64
}

func NewPlayer(name string, balance int64) *Player {
	return &Player{Name: name, Balance: balance}
}

// CanAfford reports whether the player can pay the given price.
func (p *Player) CanAfford(price int64) bool {
	return price <= p.Balance
}

func (p *Player) applyDeal(balanceDelta, profitDelta int64) {
	p.Balance += balanceDelta
	p.Profit += profitDelta
}
