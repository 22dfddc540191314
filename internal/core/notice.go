package core

// Tone classifies a notice for presentation.
type Tone int

const (
	ToneInfo Tone = iota
	ToneGood
	ToneBad
)

// Notice is a user-facing notification produced by a game tick.
// The presenter decides how long to show it.
type Notice struct {
	Tone Tone
	Text string
}
