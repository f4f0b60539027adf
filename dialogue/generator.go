// Package dialogue maps negotiation results to merchant lines. It is pure
// flavor: nothing here feeds back into the engine.
package dialogue

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"bargain-lite/bargain"
)

// Context selects the template pool for one merchant line.
type Context struct {
	Action      bargain.Action
	Mood        float64
	Trust       float64
	Personality string
	Round       int
	OfferRatio  float64
	IsBluff     bool

	Offer        int64
	CounterOffer int64
	ItemName     string
}

// Generator picks templated lines from mood/trust/personality buckets.
type Generator struct {
	pools map[string][]string
	rng   *rand.Rand
}

// NewGenerator creates a generator over the built-in pools.
// Seed 0 means time-based.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		pools: builtinPools(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// LoadPack overlays pools from a YAML file keyed by pool name. Unknown keys
// are accepted so packs can ship extra pools for custom personalities.
func (g *Generator) LoadPack(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dialogue pack: %w", err)
	}
	var pack map[string][]string
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return fmt.Errorf("parse dialogue pack: %w", err)
	}
	for key, lines := range pack {
		if len(lines) == 0 {
			continue
		}
		g.pools[key] = lines
	}
	return nil
}

// Greeting returns an opening line for a fresh negotiation.
func (g *Generator) Greeting() string {
	pool := g.pools[poolGreeting]
	return pool[g.rng.Intn(len(pool))]
}

// Generate renders a merchant line for the round's result.
func (g *Generator) Generate(ctx Context) string {
	pool := g.pools[g.selectPool(ctx)]
	if len(pool) == 0 {
		pool = g.pools[poolAcceptNeutral]
	}
	template := pool[g.rng.Intn(len(pool))]
	return g.fill(template, ctx)
}

func (g *Generator) selectPool(ctx Context) string {
	// Calling out a detected bluff takes priority half the time.
	if ctx.IsBluff && g.rng.Float64() > 0.5 {
		return poolBluffDetected
	}

	switch ctx.Action {
	case bargain.ActionAccept:
		switch {
		case ctx.Mood > 30:
			return poolAcceptPositive
		case ctx.Mood < -30:
			return poolAcceptReluctant
		default:
			return poolAcceptNeutral
		}

	case bargain.ActionCounter:
		switch {
		case ctx.Trust < 30:
			return poolCounterSuspicious
		case ctx.Mood < -40:
			return poolCounterFrustrated
		}
		switch ctx.Personality {
		case "Greedy":
			return poolCounterGreedy
		case "Impulsive":
			return poolCounterImpulsive
		default:
			return poolCounterHonest
		}

	case bargain.ActionReject:
		switch {
		case ctx.IsBluff || ctx.Trust < 20:
			return poolRejectOffended
		case ctx.Mood < -40:
			return poolRejectAnnoyed
		default:
			return poolRejectPolite
		}
	}

	return poolAcceptNeutral
}

func (g *Generator) fill(template string, ctx Context) string {
	price := ctx.CounterOffer
	if ctx.Action != bargain.ActionCounter {
		price = ctx.Offer
	}
	return strings.NewReplacer(
		"{price}", strconv.FormatInt(price, 10),
		"{offer}", strconv.FormatInt(ctx.Offer, 10),
		"{counter}", strconv.FormatInt(ctx.CounterOffer, 10),
		"{item}", ctx.ItemName,
	).Replace(template)
}
