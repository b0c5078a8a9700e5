package ease

import "math"

// Curve maps a completion fraction in [0, 1] to an eased fraction. Curves
// may undershoot 0 or overshoot 1 (Back, Elastic); they must hit 0 at 0 and
// 1 at 1.
type Curve func(percent float64) float64

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1

	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5
)

func linear(p float64) float64 { return p }

func quadIn(p float64) float64  { return p * p }
func quadOut(p float64) float64 { return 1 - (1-p)*(1-p) }
func quadInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - math.Pow(-2*p+2, 2)/2
}

func cubicIn(p float64) float64  { return p * p * p }
func cubicOut(p float64) float64 { return 1 - math.Pow(1-p, 3) }
func cubicInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

func quartIn(p float64) float64  { return p * p * p * p }
func quartOut(p float64) float64 { return 1 - math.Pow(1-p, 4) }
func quartInOut(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 4)/2
}

func quintIn(p float64) float64  { return p * p * p * p * p }
func quintOut(p float64) float64 { return 1 - math.Pow(1-p, 5) }
func quintInOut(p float64) float64 {
	if p < 0.5 {
		return 16 * p * p * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 5)/2
}

func sineIn(p float64) float64    { return 1 - math.Cos(p*math.Pi/2) }
func sineOut(p float64) float64   { return math.Sin(p * math.Pi / 2) }
func sineInOut(p float64) float64 { return -(math.Cos(math.Pi*p) - 1) / 2 }

func circIn(p float64) float64  { return 1 - math.Sqrt(1-p*p) }
func circOut(p float64) float64 { return math.Sqrt(1 - (p-1)*(p-1)) }
func circInOut(p float64) float64 {
	if p < 0.5 {
		return (1 - math.Sqrt(1-4*p*p)) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*p+2, 2)) + 1) / 2
}

func expoIn(p float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Pow(2, 10*p-10)
}
func expoOut(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}
func expoInOut(p float64) float64 {
	switch {
	case p == 0:
		return 0
	case p == 1:
		return 1
	case p < 0.5:
		return math.Pow(2, 20*p-10) / 2
	default:
		return (2 - math.Pow(2, -20*p+10)) / 2
	}
}

func backIn(p float64) float64 { return backC3*p*p*p - backC1*p*p }
func backOut(p float64) float64 {
	q := p - 1
	return 1 + backC3*q*q*q + backC1*q*q
}
func backInOut(p float64) float64 {
	if p < 0.5 {
		q := 2 * p
		return q * q * ((backC2+1)*q - backC2) / 2
	}
	q := 2*p - 2
	return (q*q*((backC2+1)*q+backC2) + 2) / 2
}

func elasticIn(p float64) float64 {
	switch p {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*p-10) * math.Sin((p*10-10.75)*elasticC4)
}
func elasticOut(p float64) float64 {
	switch p {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*p)*math.Sin((p*10-0.75)*elasticC4) + 1
}
func elasticInOut(p float64) float64 {
	switch {
	case p == 0:
		return 0
	case p == 1:
		return 1
	case p < 0.5:
		return -math.Pow(2, 20*p-10) * math.Sin((20*p-11.125)*elasticC5) / 2
	default:
		return math.Pow(2, -20*p+10)*math.Sin((20*p-11.125)*elasticC5)/2 + 1
	}
}

func bounceOut(p float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}
func bounceIn(p float64) float64 { return 1 - bounceOut(1-p) }
func bounceInOut(p float64) float64 {
	if p < 0.5 {
		return (1 - bounceOut(1-2*p)) / 2
	}
	return (1 + bounceOut(2*p-1)) / 2
}
