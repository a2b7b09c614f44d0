package billing

// EqualSplit divides a fixed total across a declared number of people,
// letting the current payer cover one or more shares. Each confirm is an
// independent payment for the payer's shares only; nothing tracks whether
// the remaining shares were collected elsewhere.
type EqualSplit struct {
	Total       float64
	TotalPeople int
	PayingFor   int
}

// NewEqualSplit clamps totalPeople to at least one and payingFor into
// [1, totalPeople].
func NewEqualSplit(total float64, totalPeople, payingFor int) EqualSplit {
	s := EqualSplit{Total: total, TotalPeople: totalPeople, PayingFor: payingFor}
	s.clamp()
	return s
}

// SetTotalPeople changes the headcount. Lowering it below the current
// payingFor clamps payingFor down to match.
func (s *EqualSplit) SetTotalPeople(n int) {
	s.TotalPeople = n
	s.clamp()
}

func (s *EqualSplit) SetPayingFor(n int) {
	s.PayingFor = n
	s.clamp()
}

func (s *EqualSplit) clamp() {
	if s.TotalPeople < 1 {
		s.TotalPeople = 1
	}
	if s.PayingFor < 1 {
		s.PayingFor = 1
	}
	if s.PayingFor > s.TotalPeople {
		s.PayingFor = s.TotalPeople
	}
}

func (s EqualSplit) AmountPerPerson() float64 {
	return s.Total / float64(s.TotalPeople)
}

// UserAmount is what the current payer owes for their shares.
func (s EqualSplit) UserAmount() float64 {
	return s.AmountPerPerson() * float64(s.PayingFor)
}

// ItemSplit is the pay-by-item breakdown: the payer picks whole cart lines
// and the surcharge and tax are prorated by the selection's share of the
// full subtotal.
type ItemSplit struct {
	Subtotal  float64 `json:"subtotal"`
	Surcharge float64 `json:"surcharge"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
}

// SplitByItems computes the payable amount for the selected item ids.
// Selection is binary per line: the whole line goes to the payer, never a
// partial quantity. Zero subtotal guards yield zero rather than NaN.
func SplitByItems(items []CartItem, selected map[string]bool, subtotal, tax, surcharge float64) ItemSplit {
	var split ItemSplit
	for _, item := range items {
		if !selected[item.ID] {
			continue
		}
		split.Subtotal += item.LineTotal()
		split.Count++
	}
	if subtotal != 0 {
		split.Surcharge = split.Subtotal * (surcharge / subtotal)
		split.Tax = (split.Subtotal + split.Surcharge) * (tax / subtotal)
	}
	split.Total = split.Subtotal + split.Surcharge + split.Tax
	return split
}

// Payable reports whether confirmation is allowed; empty selections are not.
func (s ItemSplit) Payable() bool {
	return s.Count > 0
}
