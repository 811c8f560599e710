package stomp

// Config holds the wire-format session tunables named in §3. It carries no
// behavior of its own — max_inactivity_duration only shapes the heart-beat
// header CONNECT emits (§4.D); this codec never starts a timer against it
// (§1 Non-goals: heart-beat timing is not implemented here).
type Config struct {
	// MaxInactivityDuration is the client's default heart-beat interval in
	// milliseconds. Zero disables heart-beat negotiation entirely.
	MaxInactivityDuration int

	// MaxInactivityInitialDelay is the grace period, in milliseconds,
	// before heart-beat checks begin. Tracked as data only; see above.
	MaxInactivityInitialDelay int
}

const defaultMaxInactivityDuration = 30_000

// DefaultConfig returns the §3 default tunables: a 30 second inactivity
// window, no initial delay.
func DefaultConfig() Config {
	return Config{
		MaxInactivityDuration:     defaultMaxInactivityDuration,
		MaxInactivityInitialDelay: 0,
	}
}

// ReadCheckInterval is read_check_interval per §3: equal to
// MaxInactivityDuration.
func (c Config) ReadCheckInterval() int {
	return c.MaxInactivityDuration
}

// WriteCheckInterval is write_check_interval per §3: one third of
// MaxInactivityDuration, floored at 1 when MaxInactivityDuration is
// positive, or 0 when heart-beats are disabled entirely.
func (c Config) WriteCheckInterval() int {
	if c.MaxInactivityDuration <= 0 {
		return c.MaxInactivityDuration
	}
	if v := c.MaxInactivityDuration / 3; v > 0 {
		return v
	}
	return 1
}

// ConfigOption mutates a Config. Grounded on senojj-stomp/option.go's
// func(Option) pattern, generalized from a header-mutation closure to a
// Config-mutation closure since this codec's tunables aren't header values
// themselves.
type ConfigOption func(*Config)

// WithMaxInactivityDuration overrides the default 30 second heart-beat
// window.
func WithMaxInactivityDuration(ms int) ConfigOption {
	return func(c *Config) { c.MaxInactivityDuration = ms }
}

// WithMaxInactivityInitialDelay overrides the default zero initial delay.
func WithMaxInactivityInitialDelay(ms int) ConfigOption {
	return func(c *Config) { c.MaxInactivityInitialDelay = ms }
}
