package inventory

// Resolve settles the direction and quantity of one movement. An outbound
// request is capped at min(available, cap); with nothing available it falls
// back to an inbound movement of up to cap units.
func Resolve(want Direction, available, cap int, src Source) (Direction, int) {
	if cap < 1 {
		cap = 1
	}
	if want == Out {
		maxOut := available
		if maxOut > cap {
			maxOut = cap
		}
		if maxOut > 0 {
			return Out, src.IntRange(1, maxOut)
		}
	}
	return In, src.IntRange(1, cap)
}

// Apply computes the balances around a movement of qty against the
// persisted balance b. An outbound movement the balance cannot cover is
// turned into an inbound one of the same quantity.
func Apply(b Balance, dir Direction, qty int) (Direction, int, int) {
	if dir == Out && (b.Available() < qty || b.OnHand < qty) {
		dir = In
	}
	if dir == Out {
		return Out, b.OnHand, b.OnHand - qty
	}
	return In, b.OnHand, b.OnHand + qty
}
