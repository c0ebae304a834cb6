package configs

import "time"

// Valuation configures the engine. Currency is the single reporting
// currency; rates in any other currency are rejected as broken data.
type Valuation struct {
	Currency      string        `env:"CURRENCY" envDefault:"IDR"`
	RecordTimeout time.Duration `env:"RECORD_TIMEOUT" envDefault:"10s"`
}
