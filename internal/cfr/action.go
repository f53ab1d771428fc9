package cfr

// Action is an integer-encoded betting action, per the scheme: with n
// configured bet sizes, 0=CHECK, 1..n=BET_i, n+1=FOLD, n+2=CALL,
// n+3..2n+2=RAISE_i.
type Action int

func checkAction() Action { return 0 }

func betAction(i int) Action { return Action(1 + i) }

func foldAction(n int) Action { return Action(n + 1) }

func callAction(n int) Action { return Action(n + 2) }

func raiseAction(n, i int) Action { return Action(n + 3 + i) }

func isBet(a Action, n int) (sizeIdx int, ok bool) {
	if int(a) >= 1 && int(a) <= n {
		return int(a) - 1, true
	}
	return 0, false
}

func isRaise(a Action, n int) (sizeIdx int, ok bool) {
	if int(a) >= n+3 && int(a) <= 2*n+2 {
		return int(a) - (n + 3), true
	}
	return 0, false
}
