package minigame

import (
	"math/rand"
	"testing"
)

func TestResolveRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			lo, hi := Range(k)
			seenLo, seenHi := false, false
			for i := 0; i < 5000; i++ {
				r := Resolve(k, rng)
				if r.Kind != k {
					t.Fatalf("Kind = %v, expected %v", r.Kind, k)
				}
				if r.Bonus < lo || r.Bonus > hi {
					t.Fatalf("Bonus = %d, expected within [%d,%d]", r.Bonus, lo, hi)
				}
				seenLo = seenLo || r.Bonus == lo
				seenHi = seenHi || r.Bonus == hi
			}
			if !seenLo || !seenHi {
				t.Errorf("bounds [%d,%d] not both reached (lo=%v hi=%v)", lo, hi, seenLo, seenHi)
			}
		})
	}
}

func TestCardRange(t *testing.T) {
	lo, hi := Range(Cards)
	if lo != 4 || hi != 17 {
		t.Errorf("Range(Cards) = [%d,%d], expected [4,17]", lo, hi)
	}
}

func TestPayloadMatchesBonus(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		r := Play(rng)
		switch p := r.Payload.(type) {
		case DicePayload:
			if p.Faces[0]+p.Faces[1] != r.Bonus {
				t.Errorf("dice faces %v do not sum to bonus %d", p.Faces, r.Bonus)
			}
		case CardsPayload:
			if p.Drawn[0] == p.Drawn[1] {
				t.Errorf("drew the same card twice: %v", p.Drawn)
			}
			if p.Drawn[0].Value+p.Drawn[1].Value != r.Bonus {
				t.Errorf("cards %v do not sum to bonus %d", p.Drawn, r.Bonus)
			}
		case SpinnerPayload:
			if p.Value != r.Bonus {
				t.Errorf("spinner value %d != bonus %d", p.Value, r.Bonus)
			}
		case TreasurePayload:
			if p.Value != r.Bonus {
				t.Errorf("treasure value %d != bonus %d", p.Value, r.Bonus)
			}
		default:
			t.Fatalf("unexpected payload %T", r.Payload)
		}
	}
}

func TestPlayIsDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		ra, rb := Play(a), Play(b)
		if ra.Kind != rb.Kind || ra.Bonus != rb.Bonus || ra.Payload != rb.Payload {
			t.Fatalf("run %d differs: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestPlayCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[Kind]bool{}
	for i := 0; i < 400; i++ {
		seen[Play(rng).Kind] = true
	}
	for _, k := range Kinds() {
		if !seen[k] {
			t.Errorf("kind %v never selected", k)
		}
	}
}

func TestHandNotMutated(t *testing.T) {
	before := Hand
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		Resolve(Cards, rng)
	}
	if Hand != before {
		t.Errorf("Hand was mutated: %v", Hand)
	}
}
