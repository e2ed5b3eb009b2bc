package latebalance

// Balance is an employee's pool of grace minutes for the current month.
// Minutes always stays within [0, Allowance].
type Balance struct {
	Minutes   int
	Allowance int
}

// New builds the balance from the stored value. An unset value starts at the allowance;
// a stored value outside the bounds is clamped.
func New(stored *int, allowance int) Balance {
	if allowance < 0 {
		allowance = 0
	}
	if stored == nil {
		return Balance{Minutes: allowance, Allowance: allowance}
	}
	return Balance{Minutes: clamp(*stored, allowance), Allowance: allowance}
}

// Consume takes up to n minutes and reports how many were taken.
func (b Balance) Consume(n int) (Balance, int) {
	if n <= 0 || b.Minutes == 0 {
		return b, 0
	}
	taken := min(n, b.Minutes)
	b.Minutes -= taken
	return b, taken
}

// Restore gives back n minutes, capped at the allowance.
func (b Balance) Restore(n int) (Balance, int) {
	if n <= 0 {
		return b, 0
	}
	next := clamp(b.Minutes+n, b.Allowance)
	restored := next - b.Minutes
	b.Minutes = next
	return b, restored
}

func clamp(v, allowance int) int {
	if v < 0 {
		return 0
	}
	if v > allowance {
		return allowance
	}
	return v
}
