package model

// Signal is the trading recommendation for a single bar.
type Signal int

const (
	Hold Signal = iota
	Buy
	Sell
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}

// Code returns 1 for BUY, -1 for SELL and 0 for HOLD.
func (s Signal) Code() int {
	switch s {
	case Buy:
		return 1
	case Sell:
		return -1
	default:
		return 0
	}
}

// ParseSignal maps a label back to a Signal. Unknown labels are HOLD.
func ParseSignal(label string) Signal {
	switch label {
	case "BUY":
		return Buy
	case "SELL":
		return Sell
	default:
		return Hold
	}
}
