package outbound

// RandomSource abstracts randomized selection (fallback utterances, alternate
// voices) so tests can substitute a deterministic source.
type RandomSource interface {
	Intn(n int) int
}
