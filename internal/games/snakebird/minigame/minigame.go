// Package minigame resolves the small games of chance played on every
// portal entry. Resolution is a pure function of the kind and the random
// source, so a seeded *rand.Rand gives reproducible results.
package minigame

import (
	"fmt"
	"math/rand"
)

// Kind selects a mini-game.
type Kind int

const (
	Dice Kind = iota
	Cards
	Spinner
	Treasure
	kindCount
)

// Kinds returns every mini-game kind.
func Kinds() []Kind {
	return []Kind{Dice, Cards, Spinner, Treasure}
}

// String returns the short name of the kind.
func (k Kind) String() string {
	switch k {
	case Dice:
		return "dice"
	case Cards:
		return "cards"
	case Spinner:
		return "spinner"
	case Treasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// Title returns the display name used in the overlay.
func (k Kind) Title() string {
	switch k {
	case Dice:
		return "Dice Roll"
	case Cards:
		return "Card Draw"
	case Spinner:
		return "Lucky Spinner"
	case Treasure:
		return "Treasure Chest"
	default:
		return "Mini-Game"
	}
}

// Spinner and treasure bounds, inclusive.
const (
	SpinnerMin  = 1
	SpinnerMax  = 10
	TreasureMin = 5
	TreasureMax = 20
)

// Card is one card of the fixed hand.
type Card struct {
	Label string
	Value int
}

// Hand is the fixed five-card hand shuffled by the card game.
var Hand = [5]Card{
	{Label: "A", Value: 1},
	{Label: "3", Value: 3},
	{Label: "5", Value: 5},
	{Label: "7", Value: 7},
	{Label: "10", Value: 10},
}

// Payload is the kind-specific outcome shown to the player.
type Payload interface {
	Describe() string
	payload()
}

// DicePayload holds the two rolled faces.
type DicePayload struct {
	Faces [2]int
}

// CardsPayload holds the two cards drawn from the shuffled hand.
type CardsPayload struct {
	Drawn [2]Card
}

// SpinnerPayload holds where the spinner stopped.
type SpinnerPayload struct {
	Value int
}

// TreasurePayload holds the chest contents.
type TreasurePayload struct {
	Value int
}

func (DicePayload) payload()     {}
func (CardsPayload) payload()    {}
func (SpinnerPayload) payload()  {}
func (TreasurePayload) payload() {}

func (p DicePayload) Describe() string {
	return fmt.Sprintf("rolled %d and %d", p.Faces[0], p.Faces[1])
}

func (p CardsPayload) Describe() string {
	return fmt.Sprintf("drew %s and %s", p.Drawn[0].Label, p.Drawn[1].Label)
}

func (p SpinnerPayload) Describe() string {
	return fmt.Sprintf("spinner stopped on %d", p.Value)
}

func (p TreasurePayload) Describe() string {
	return fmt.Sprintf("chest held %d coins", p.Value)
}

// Result is a resolved mini-game.
type Result struct {
	Kind    Kind
	Payload Payload
	Bonus   int
}

// Summary returns a one-line description for notices and overlays.
func (r Result) Summary() string {
	if r.Payload == nil {
		return fmt.Sprintf("%s: +%d", r.Kind.Title(), r.Bonus)
	}
	return fmt.Sprintf("%s: %s, +%d", r.Kind.Title(), r.Payload.Describe(), r.Bonus)
}

// Play picks a kind uniformly and resolves it.
func Play(rng *rand.Rand) Result {
	return Resolve(Kind(rng.Intn(int(kindCount))), rng)
}

// Resolve plays one game of the given kind.
func Resolve(k Kind, rng *rand.Rand) Result {
	switch k {
	case Dice:
		a, b := 1+rng.Intn(6), 1+rng.Intn(6)
		return Result{Kind: k, Payload: DicePayload{Faces: [2]int{a, b}}, Bonus: a + b}
	case Cards:
		hand := Hand
		rng.Shuffle(len(hand), func(i, j int) { hand[i], hand[j] = hand[j], hand[i] })
		return Result{
			Kind:    k,
			Payload: CardsPayload{Drawn: [2]Card{hand[0], hand[1]}},
			Bonus:   hand[0].Value + hand[1].Value,
		}
	case Spinner:
		v := between(rng, SpinnerMin, SpinnerMax)
		return Result{Kind: k, Payload: SpinnerPayload{Value: v}, Bonus: v}
	case Treasure:
		v := between(rng, TreasureMin, TreasureMax)
		return Result{Kind: k, Payload: TreasurePayload{Value: v}, Bonus: v}
	default:
		return Result{Kind: k}
	}
}

// Range returns the inclusive bonus bounds of a kind.
func Range(k Kind) (lo, hi int) {
	switch k {
	case Dice:
		return 2, 12
	case Cards:
		return Hand[0].Value + Hand[1].Value, Hand[3].Value + Hand[4].Value
	case Spinner:
		return SpinnerMin, SpinnerMax
	case Treasure:
		return TreasureMin, TreasureMax
	default:
		return 0, 0
	}
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
