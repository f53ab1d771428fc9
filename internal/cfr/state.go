package cfr

// GameState is a node in the post-flop betting tree. It is small and
// cheap to copy; Apply returns a new value rather than mutating in place,
// which keeps the recursive traversal free of aliasing bugs.
type GameState struct {
	Street           Street
	Acting           int
	PotBB            float64
	CurrentBetBB     float64
	P0PutBB          float64
	P1PutBB          float64
	RaisesThisStreet int
	History          []Action // actions taken so far on the current street
	Depth            int

	Terminal     bool
	Showdown     bool
	FoldedPlayer int // -1 unless Terminal && !Showdown
}

func initialState(cfg *Config) *GameState {
	return &GameState{
		Street:       Flop,
		Acting:       0,
		PotBB:        cfg.StartingPotBB,
		FoldedPlayer: -1,
	}
}

// LegalActions returns the action set available to the acting player, per
// whether there is a bet to face.
func LegalActions(cfg *Config, s *GameState) []Action {
	n := len(cfg.BetSizes)
	if s.CurrentBetBB == 0 {
		actions := make([]Action, 0, 1+n)
		actions = append(actions, checkAction())
		for i := 0; i < n; i++ {
			actions = append(actions, betAction(i))
		}
		return actions
	}

	actions := make([]Action, 0, 2+n)
	actions = append(actions, foldAction(n), callAction(n))
	if s.RaisesThisStreet < cfg.MaxRaises {
		for i := 0; i < n; i++ {
			actions = append(actions, raiseAction(n, i))
		}
	}
	return actions
}

// Apply returns the successor state reached by taking action a at s.
func Apply(cfg *Config, s *GameState, a Action) *GameState {
	n := len(cfg.BetSizes)
	next := *s
	next.Depth = s.Depth + 1
	next.FoldedPlayer = -1

	if a == checkAction() {
		doubleCheck := len(s.History) > 0 && s.History[len(s.History)-1] == checkAction()
		if doubleCheck {
			if s.Street == River {
				next.Terminal = true
				next.Showdown = true
			} else {
				advanceStreet(&next)
			}
			return &next
		}
		next.History = appendAction(s.History, a)
		next.Acting = 1 - s.Acting
		return &next
	}

	if idx, ok := isBet(a, n); ok {
		size := cfg.BetSizes[idx] * s.PotBB
		next.PotBB = s.PotBB + size
		next.CurrentBetBB = size
		addContribution(&next, s.Acting, size)
		next.History = appendAction(s.History, a)
		next.Acting = 1 - s.Acting
		return &next
	}

	if a == foldAction(n) {
		next.Terminal = true
		next.FoldedPlayer = s.Acting
		return &next
	}

	if a == callAction(n) {
		next.PotBB = s.PotBB + s.CurrentBetBB
		addContribution(&next, s.Acting, s.CurrentBetBB)
		next.CurrentBetBB = 0
		if s.Street == River {
			next.Terminal = true
			next.Showdown = true
		} else {
			advanceStreet(&next)
		}
		return &next
	}

	idx, ok := isRaise(a, n)
	if !ok {
		panic("cfr: unrecognized action")
	}
	size := cfg.BetSizes[idx] * s.PotBB
	total := s.CurrentBetBB + size
	next.PotBB = s.PotBB + total
	addContribution(&next, s.Acting, total)
	next.CurrentBetBB = size
	next.RaisesThisStreet = s.RaisesThisStreet + 1
	next.History = appendAction(s.History, a)
	next.Acting = 1 - s.Acting
	return &next
}

func appendAction(history []Action, a Action) []Action {
	out := make([]Action, len(history)+1)
	copy(out, history)
	out[len(history)] = a
	return out
}

func addContribution(s *GameState, player int, amount float64) {
	if player == 0 {
		s.P0PutBB += amount
	} else {
		s.P1PutBB += amount
	}
}

func advanceStreet(s *GameState) {
	s.Street++
	s.Acting = 0
	s.History = nil
	s.RaisesThisStreet = 0
	s.CurrentBetBB = 0
}
