package billing

// Tip describes the tip chosen at payment time: either a percentage of the
// post-surcharge, post-tax base total, or a flat custom dollar amount.
type Tip struct {
	Percent float64
	Custom  float64
	IsFlat  bool
}

func NoTip() Tip {
	return Tip{}
}

func TipPercent(rate float64) Tip {
	return Tip{Percent: rate}
}

func TipFlat(amount float64) Tip {
	return Tip{Custom: amount, IsFlat: true}
}

// Bill is the full payable breakdown after surcharge, tax and tip layering.
type Bill struct {
	Subtotal           float64 `json:"subtotal"`
	Surcharge          float64 `json:"surcharge"`
	TotalWithSurcharge float64 `json:"totalWithSurcharge"`
	EffectiveTaxRate   float64 `json:"effectiveTaxRate"`
	Tax                float64 `json:"tax"`
	BaseTotal          float64 `json:"baseTotal"`
	TipAmount          float64 `json:"tipAmount"`
	Total              float64 `json:"total"`
}

// ComputeBill layers the restaurant surcharge onto the subtotal, rescales tax
// at the original effective rate so the surcharge is taxed consistently, then
// applies the tip on top of the resulting base total.
//
// Tax is not carried over as a flat amount: the caller's tax was computed on
// the bare subtotal, so the effective rate is recovered (tax/subtotal) and
// reapplied to the surcharged base. An empty cart yields an all-zero bill.
func ComputeBill(subtotal, tax, surchargeRate float64, tip Tip) Bill {
	b := Bill{Subtotal: subtotal}

	b.Surcharge = subtotal * surchargeRate
	b.TotalWithSurcharge = subtotal + b.Surcharge
	if subtotal != 0 {
		b.EffectiveTaxRate = tax / subtotal
	}
	b.Tax = b.TotalWithSurcharge * b.EffectiveTaxRate
	b.BaseTotal = b.TotalWithSurcharge + b.Tax

	if tip.IsFlat {
		b.TipAmount = tip.Custom
	} else {
		b.TipAmount = b.BaseTotal * tip.Percent
	}
	b.Total = b.BaseTotal + b.TipAmount
	return b
}

// Payable reports whether the bill can be charged. Empty carts cannot pay.
func (b Bill) Payable() bool {
	return b.Subtotal > 0
}
