package configs

import "time"

// Redis configures the optional Redis backend. When Addr is empty the rate
// snapshot cache is disabled and pending calculations are kept in process.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`

	// SnapshotTTL bounds how long a rate snapshot may be served from
	// cache. Zero disables the cache even when Redis is configured.
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"30s"`
	PendingTTL  time.Duration `env:"PENDING_TTL" envDefault:"24h"`
}

func (c Redis) Enabled() bool { return c.Addr != "" }
