// Command bargain is an interactive console front-end for the negotiation
// engine: haggle with a procedurally generated merchant over random items.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"bargain-lite/bargain"
	"bargain-lite/game"
	"bargain-lite/item"
)

// table is the narrow slice of the orchestrator the console needs.
// It keeps the renderer off the concrete game type.
type table interface {
	StartNegotiation(mode bargain.Mode) (*item.Item, string, error)
	SubmitOffer(offer int64) (game.Outcome, error)
	ReplaceMerchant() error
	Player() *game.Player
	Merchant() *bargain.Merchant
	Negotiating() bool
	Rounds() (current, max int, ok bool)
}

func main() {
	var (
		seed     = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
		hardMode = flag.Bool("hard", false, "hard mode: 4 rounds instead of 6")
		balance  = flag.Int64("balance", 1000, "starting balance in coins")
		catalog  = flag.String("catalog", "", "optional YAML item catalog")
		profiles = flag.String("profiles", "", "optional JSON personality profiles")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := game.Config{
		Seed:            *seed,
		HardMode:        *hardMode,
		StartingBalance: *balance,
	}

	if *catalog != "" {
		templates, err := item.LoadTemplates(*catalog)
		if err != nil {
			slog.Error("load catalog", "path", *catalog, "err", err)
			os.Exit(1)
		}
		cfg.Templates = templates
	}
	if *profiles != "" {
		registry := bargain.NewRegistry()
		if err := registry.LoadFromFile(*profiles); err != nil {
			slog.Error("load profiles", "path", *profiles, "err", err)
			os.Exit(1)
		}
		cfg.Profiles = registry
	}

	g, err := game.New(cfg)
	if err != nil {
		slog.Error("init game", "err", err)
		os.Exit(1)
	}

	run(g, bufio.NewScanner(os.Stdin))
}

func run(t table, in *bufio.Scanner) {
	fmt.Println("=== STELLAR BARGAINS ===")
	printMerchant(t)
	printHelp()

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "q":
			return
		case "help", "h":
			printHelp()
		case "status", "s":
			printStatus(t)
		case "buy":
			startTalk(t, bargain.ModeBuy)
		case "sell":
			startTalk(t, bargain.ModeSell)
		case "new":
			if err := t.ReplaceMerchant(); err != nil {
				fmt.Println("!", err)
				continue
			}
			fmt.Println("A new merchant sets up shop.")
			printMerchant(t)
		default:
			offer, err := strconv.ParseInt(line, 10, 64)
			if err != nil {
				fmt.Println("! unknown command (try 'help')")
				continue
			}
			submit(t, offer)
		}
	}
}

func startTalk(t table, mode bargain.Mode) {
	it, greeting, err := t.StartNegotiation(mode)
	if err != nil {
		fmt.Println("!", err)
		return
	}
	_, maxRounds, _ := t.Rounds()
	fmt.Printf("\n[%s] %s — %s\n", mode, it.Name, it.Description)
	fmt.Printf("  %s / %s, market says ~%d coins, %d rounds\n",
		it.Rarity, it.Condition, it.MarketHint, maxRounds)
	fmt.Printf("%s: %q\n", t.Merchant().Name, greeting)
	fmt.Println("Enter your offer as a number.")
}

func submit(t table, offer int64) {
	if !t.Negotiating() {
		fmt.Println("! no negotiation in progress (try 'buy' or 'sell')")
		return
	}

	outcome, err := t.SubmitOffer(offer)
	if err != nil {
		fmt.Println("!", err)
		return
	}

	fmt.Printf("%s: %q\n", t.Merchant().Name, outcome.Message)

	switch {
	case outcome.DealClosed:
		fmt.Printf("Deal closed at %d coins (profit %+d).\n", outcome.FinalPrice, outcome.Profit)
		printStatus(t)
	case outcome.Over:
		fmt.Println("No deal this time.")
		printStatus(t)
	default:
		if cur, max, ok := t.Rounds(); ok {
			fmt.Printf("  counteroffer %d — round %d/%d\n", outcome.Result.CounterOffer, cur, max)
		}
	}
}

func printMerchant(t table) {
	m := t.Merchant()
	fmt.Printf("Merchant %s (%s) — mood %.0f, trust %.0f\n",
		m.Name, m.Personality().Name, m.Mood(), m.Trust())
}

func printStatus(t table) {
	p := t.Player()
	fmt.Printf("Balance %d coins, total profit %+d\n", p.Balance, p.Profit)
	printMerchant(t)
}

func printHelp() {
	fmt.Println(`commands:
  buy    negotiate to buy a random item
  sell   negotiate to sell a random item
  <n>    submit an offer of n coins
  new    replace the merchant
  status show balance and merchant state
  quit   leave the bazaar`)
}
