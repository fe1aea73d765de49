package order

import "math"

// FeeBreakdown holds every fee derived from a project value.
type FeeBreakdown struct {
	ClientFee       float64
	ProviderFee     float64
	ProviderDeposit float64
	ProviderBalance float64
	ProviderNet     float64
	ClientCost      float64
}

// CalculateFees maps a project value onto the tiered fee schedule. It is total
// over any input; range validation happens at the operation boundary.
//
// The top tier's clamp bounds are inverted (lo 250 > hi 200), so any value
// above 5000 yields a provider fee of exactly 250. Orders exported by earlier
// builds carry fees computed that way, so the behavior is kept as is.
func CalculateFees(projectValue float64) FeeBreakdown {
	var clientFee, providerFee float64
	switch {
	case projectValue <= 300:
		clientFee = 30
		providerFee = clamp(projectValue*0.10, 10, 30)
	case projectValue <= 800:
		clientFee = 50
		providerFee = clamp(projectValue*0.10, 30, 80)
	case projectValue <= 2000:
		clientFee = 80
		providerFee = clamp(projectValue*0.08, 64, 160)
	case projectValue <= 5000:
		clientFee = 100
		providerFee = clamp(projectValue*0.06, 120, 150)
	default:
		clientFee = 150
		providerFee = clamp(projectValue*0.05, 250, 200)
	}

	return FeeBreakdown{
		ClientFee:       clientFee,
		ProviderFee:     providerFee,
		ProviderDeposit: round2(providerFee * 0.2),
		ProviderBalance: round2(providerFee * 0.8),
		ProviderNet:     round2(projectValue - providerFee),
		ClientCost:      round2(clientFee + projectValue),
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
