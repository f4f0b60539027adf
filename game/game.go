// Package game runs the closed-economy loop around the negotiation core:
// item generation, affordability checks, deal accounting, and merchant
// turnover. Rendering stays outside; callers consume Outcome values and
// merchant snapshots.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"bargain-lite/bargain"
	"bargain-lite/dialogue"
	"bargain-lite/item"
)

const (
	defaultStartingBalance = 1000
	dealMoodBonus          = 20
	honestDealTrustBonus   = 5
	failedTalkMoodPenalty  = -5
)

type Config struct {
	// Seed drives item generation, merchant naming and dialogue selection.
	// 0 means time-based.
	Seed int64

	// HardMode shortens every negotiation to 4 rounds.
	HardMode bool

	// StartingBalance defaults to 1000 coins.
	StartingBalance int64

	// Templates overrides the stock item catalog.
	Templates []item.Template

	// Profiles supplies merchant personalities; defaults to the stock
	// preset registry.
	Profiles *bargain.ProfileRegistry
}

// Game owns one player, one current merchant, and at most one in-flight
// negotiation session.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	player *Player

	profiles *bargain.ProfileRegistry
	merchant *bargain.Merchant

	itemGen *item.Generator
	msgGen  *dialogue.Generator

	session     *bargain.Session
	currentItem *item.Item
	mode        bargain.Mode
}

// Outcome is what one submitted offer produced, ready for rendering.
type Outcome struct {
	Result  bargain.Result
	Message string

	// DealClosed is true when the merchant accepted; FinalPrice and
	// Profit are then filled in.
	DealClosed bool
	FinalPrice int64
	Profit     int64

	// Over is true when the negotiation ended this round, by acceptance,
	// rejection or round exhaustion.
	Over bool
}

func New(cfg Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.StartingBalance == 0 {
		cfg.StartingBalance = defaultStartingBalance
	}
	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("starting balance must be >= 0")
	}

	templates := cfg.Templates
	if templates == nil {
		templates = item.Templates
	}
	itemGen, err := item.NewGeneratorWith(templates, seed)
	if err != nil {
		return nil, fmt.Errorf("item generator: %w", err)
	}

	profiles := cfg.Profiles
	if profiles == nil {
		profiles = bargain.NewRegistry()
	}

	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		cfg:      cfg,
		rng:      rng,
		player:   NewPlayer("Trader", cfg.StartingBalance),
		profiles: profiles,
		itemGen:  itemGen,
		msgGen:   dialogue.NewGenerator(seed),
	}
	g.merchant = bargain.NewMerchant(profiles.Random(rng), rng)
	return g, nil
}

// StartNegotiation generates an item and opens a session for it. Returns
// the item and the merchant's greeting line.
func (g *Game) StartNegotiation(mode bargain.Mode) (*item.Item, string, error) {
	if g.session != nil && !g.session.IsComplete() {
		return nil, "", ErrNegotiationActive
	}

	it := g.itemGen.Generate()

	// The player only ever sees the market hint, so affordability is
	// judged against it too.
	if mode == bargain.ModeBuy && !g.player.CanAfford(it.MarketHint) {
		return nil, "", fmt.Errorf("%w for %s (~%d coins)", ErrCannotAfford, it.Name, it.MarketHint)
	}

	session, err := bargain.NewSession(g.merchant, it, bargain.Config{
		Mode:     mode,
		HardMode: g.cfg.HardMode,
	})
	if err != nil {
		return nil, "", err
	}

	g.session = session
	g.currentItem = it
	g.mode = mode
	return it, g.msgGen.Greeting(), nil
}

// SubmitOffer validates and processes one player offer, renders the
// merchant's line, and settles the deal when the negotiation ends.
func (g *Game) SubmitOffer(offer int64) (Outcome, error) {
	if g.session == nil {
		return Outcome{}, ErrNoNegotiation
	}
	if offer <= 0 {
		return Outcome{}, bargain.ErrInvalidOffer
	}
	if g.mode == bargain.ModeBuy && !g.player.CanAfford(offer) {
		return Outcome{}, ErrCannotAfford
	}
	if g.session.IsComplete() {
		return Outcome{}, bargain.ErrSessionComplete
	}

	result, err := g.session.SubmitOffer(offer)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Result: result}
	outcome.Message = g.msgGen.Generate(dialogue.Context{
		Action:       result.Action,
		Mood:         g.merchant.Mood(),
		Trust:        g.merchant.Trust(),
		Personality:  g.merchant.Personality().Name,
		Round:        g.session.Round() - 1,
		OfferRatio:   float64(offer) / float64(g.currentItem.FairPrice),
		IsBluff:      g.session.IsBluffing(),
		Offer:        offer,
		CounterOffer: result.CounterOffer,
		ItemName:     g.currentItem.Name,
	})

	switch {
	case result.Action == bargain.ActionAccept:
		outcome.DealClosed = true
		outcome.Over = true
		outcome.FinalPrice = offer
		outcome.Profit = g.completeDeal(offer)
	case result.Action == bargain.ActionReject || g.session.IsComplete():
		outcome.Over = true
		g.abandonNegotiation()
	}

	return outcome, nil
}

// completeDeal settles an accepted offer: moves coins, books profit
// against the hidden fair price, and rewards the merchant relationship.
func (g *Game) completeDeal(finalPrice int64) int64 {
	fair := g.currentItem.FairPrice

	var profit, balanceDelta int64
	if g.mode == bargain.ModeBuy {
		profit = fair - finalPrice
		balanceDelta = -finalPrice
	} else {
		profit = finalPrice - fair
		balanceDelta = finalPrice
	}
	g.player.applyDeal(balanceDelta, profit)

	g.merchant.AdjustMood(dealMoodBonus)
	if !g.session.IsBluffing() {
		g.merchant.AdjustTrust(honestDealTrustBonus)
	}

	g.clearSession()
	return profit
}

// abandonNegotiation closes a failed negotiation with a small mood dent.
func (g *Game) abandonNegotiation() {
	g.merchant.AdjustMood(failedTalkMoodPenalty)
	g.clearSession()
}

func (g *Game) clearSession() {
	g.session = nil
	g.currentItem = nil
	g.mode = bargain.ModeNone
}

// ReplaceMerchant swaps in a fresh merchant with a random personality.
// Not allowed mid-negotiation.
func (g *Game) ReplaceMerchant() error {
	if g.session != nil && !g.session.IsComplete() {
		return ErrNegotiationActive
	}
	g.clearSession()
	g.merchant = bargain.NewMerchant(g.profiles.Random(g.rng), g.rng)
	return nil
}

// Reset restores the starting balance and rolls a new merchant.
func (g *Game) Reset() {
	g.player = NewPlayer("Trader", g.cfg.StartingBalance)
	g.merchant = bargain.NewMerchant(g.profiles.Random(g.rng), g.rng)
	g.clearSession()
}

func (g *Game) Player() *Player             { return g.player }
func (g *Game) Merchant() *bargain.Merchant { return g.merchant }
func (g *Game) CurrentItem() *item.Item     { return g.currentItem }
func (g *Game) Mode() bargain.Mode          { return g.mode }

// Negotiating reports whether an offer is currently expected.
func (g *Game) Negotiating() bool {
	return g.session != nil && !g.session.IsComplete()
}

// Rounds returns the current and maximum round of the active session.
func (g *Game) Rounds() (current, max int, ok bool) {
	if g.session == nil {
		return 0, 0, false
	}
	return g.session.Round(), g.session.MaxRounds(), true
}
