package sim

// SFX is a named sound effect request.
type SFX uint8

const (
	SFXMove SFX = iota // a swap started or a piece settled
	SFXThud            // gravity moved a piece
)

// String returns the effect name hosts map to audio.
func (s SFX) String() string {
	switch s {
	case SFXMove:
		return "move"
	case SFXThud:
		return "thud"
	default:
		return "unknown"
	}
}

// Speaker queues sound requests until the host drains them.
type Speaker struct {
	requests []SFX
}

// Request appends an effect to the queue.
func (s *Speaker) Request(e SFX) {
	s.requests = append(s.requests, e)
}

// Pending returns the number of queued requests.
func (s *Speaker) Pending() int {
	return len(s.requests)
}

// Drain returns the queued requests in order and empties the queue.
func (s *Speaker) Drain() []SFX {
	if len(s.requests) == 0 {
		return nil
	}
	out := s.requests
	s.requests = make([]SFX, 0, cap(out))
	return out
}
