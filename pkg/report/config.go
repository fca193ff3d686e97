package report

// Config carries the settings for one render. It is immutable once built
// and safe to share across goroutines; construct it with NewConfigBuilder.
type Config struct {
	scale         float64
	datastorePath string
	aislePath     string
	pantryPath    string
}

// DefaultConfig returns the configuration Render uses: scale 1.0 and no
// datastore, aisle or pantry.
func DefaultConfig() Config {
	return Config{scale: 1}
}

// Scale returns the quantity multiplier.
func (c Config) Scale() float64 {
	return c.scale
}

// DatastorePath returns the datastore root directory, empty when none is
// configured.
func (c Config) DatastorePath() string {
	return c.datastorePath
}

// AislePath returns the aisle configuration file path, empty when none is
// configured.
func (c Config) AislePath() string {
	return c.aislePath
}

// PantryPath returns the pantry configuration file path, empty when none
// is configured.
func (c Config) PantryPath() string {
	return c.pantryPath
}

// ConfigBuilder assembles a Config. The zero value is not usable; start
// from NewConfigBuilder.
type ConfigBuilder struct {
	cfg Config
}

// NewConfigBuilder returns a builder seeded with the defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: DefaultConfig()}
}

// Scale sets the multiplier applied to every numeric ingredient quantity.
func (b *ConfigBuilder) Scale(scale float64) *ConfigBuilder {
	b.cfg.scale = scale
	return b
}

// DatastorePath sets the root directory db() lookups resolve against.
func (b *ConfigBuilder) DatastorePath(path string) *ConfigBuilder {
	b.cfg.datastorePath = path
	return b
}

// AislePath sets the aisle configuration file used by aisled().
func (b *ConfigBuilder) AislePath(path string) *ConfigBuilder {
	b.cfg.aislePath = path
	return b
}

// PantryPath sets the pantry configuration file used by
// excluding_pantry() and from_pantry().
func (b *ConfigBuilder) PantryPath(path string) *ConfigBuilder {
	b.cfg.pantryPath = path
	return b
}

// Build returns the finished Config. The builder can keep being used;
// later changes do not affect configs already built.
func (b *ConfigBuilder) Build() Config {
	return b.cfg
}
