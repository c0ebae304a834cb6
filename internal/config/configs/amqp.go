package configs

// AMQP configures publishing of calculation.recorded events. Publishing is
// disabled when URL is empty.
type AMQP struct {
	URL        string `env:"URL"`
	Exchange   string `env:"EXCHANGE" envDefault:"ave.events"`
	RoutingKey string `env:"ROUTING_KEY" envDefault:"calculation.recorded"`
}

func (c AMQP) Enabled() bool { return c.URL != "" }
