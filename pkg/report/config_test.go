package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1.0, cfg.Scale())
	assert.Empty(t, cfg.DatastorePath())
	assert.Empty(t, cfg.AislePath())
	assert.Empty(t, cfg.PantryPath())
}

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		Scale(2.5).
		DatastorePath("/data/db").
		AislePath("/data/aisle.conf").
		PantryPath("/data/pantry.conf").
		Build()

	assert.Equal(t, 2.5, cfg.Scale())
	assert.Equal(t, "/data/db", cfg.DatastorePath())
	assert.Equal(t, "/data/aisle.conf", cfg.AislePath())
	assert.Equal(t, "/data/pantry.conf", cfg.PantryPath())
}

func TestConfigBuilderDefaultsScale(t *testing.T) {
	cfg := NewConfigBuilder().DatastorePath("/data/db").Build()

	assert.Equal(t, 1.0, cfg.Scale())
}

func TestBuildSnapshotsConfig(t *testing.T) {
	builder := NewConfigBuilder().Scale(2)
	first := builder.Build()

	// Later builder changes must not leak into configs already built.
	builder.Scale(4)
	second := builder.Build()

	assert.Equal(t, 2.0, first.Scale())
	assert.Equal(t, 4.0, second.Scale())
}
