package model

// Params holds the indicator window lengths.
type Params struct {
	Short     int `yaml:"short"`
	Long      int `yaml:"long"`
	RSIPeriod int `yaml:"rsi_period"`
}

// DefaultParams returns SMA(20), SMA(50) and RSI(14).
func DefaultParams() Params {
	return Params{Short: 20, Long: 50, RSIPeriod: 14}
}

// IndicatedBar is a bar extended with its derived indicator columns.
type IndicatedBar struct {
	OHLCV
	SMAShort Value
	SMALong  Value
	AvgGain  Value
	AvgLoss  Value
	RSI      Value
	Signal   Signal
}

// Defined reports whether every derived column of the bar is defined.
func (b IndicatedBar) Defined() bool {
	return b.SMAShort.Defined() && b.SMALong.Defined() &&
		b.AvgGain.Defined() && b.AvgLoss.Defined() && b.RSI.Defined()
}

// IndicatedSeries is a Series with derived columns, aligned 1:1 by position.
type IndicatedSeries struct {
	Symbol string
	Params Params
	Bars   []IndicatedBar
}

// Len returns the number of bars.
func (s *IndicatedSeries) Len() int { return len(s.Bars) }
