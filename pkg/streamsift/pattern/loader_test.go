package pattern_test

import (
	"errors"
	"testing"

	"github.com/streamsift/streamsift-go/pkg/streamsift/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Valid(t *testing.T) {
	cfg, err := pattern.Load("testdata/valid.yaml")
	require.NoError(t, err)

	require.NotNil(t, cfg.Include)
	assert.Equal(t, "NBA", *cfg.Include)
	require.NotNil(t, cfg.Exclude)
	assert.Equal(t, `\(ES\)`, *cfg.Exclude)
	assert.False(t, cfg.SkipBuiltinFilter)

	assert.True(t, cfg.Field(pattern.FieldTeam1).Enabled)
	assert.True(t, cfg.Field(pattern.FieldTeam2).Enabled)
	assert.False(t, cfg.Field(pattern.FieldLeague).Enabled)
	assert.NotEmpty(t, cfg.Field(pattern.FieldLeague).Pattern)
	assert.False(t, cfg.Field(pattern.FieldDate).Enabled, "absent field is disabled")
}

func TestLoad_InvalidRegexStillLoads(t *testing.T) {
	// Regex syntax is not checked at load time; a broken pattern is a
	// per-field validation result when compiled, not a load failure.
	cfg, err := pattern.Load("testdata/invalid_regex.yaml")
	require.NoError(t, err)

	fp := cfg.Field(pattern.FieldTeam1)
	assert.True(t, fp.Enabled)
	assert.False(t, pattern.Validate(fp.Pattern).Valid)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := pattern.Load("testdata/unknown_field.yaml")
	require.Error(t, err)

	var verr *pattern.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "referee", verr.Field)
}

func TestLoad_BadVersion(t *testing.T) {
	_, err := pattern.Load("testdata/bad_version.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestLoad_EnabledWithoutPattern(t *testing.T) {
	_, err := pattern.Load("testdata/enabled_without_pattern.yaml")
	require.Error(t, err)

	var verr *pattern.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "date", verr.Field)
}

func TestLoad_Nonexistent(t *testing.T) {
	_, err := pattern.Load("testdata/nonexistent.yaml")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "testdata/", "path must not leak into the error")
}

func TestLoadBytes_Empty(t *testing.T) {
	_, err := pattern.LoadBytes(nil)
	require.Error(t, err)
}

func TestLoadBytes_BadYAML(t *testing.T) {
	_, err := pattern.LoadBytes([]byte("{not yaml: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML")
}

func TestValidateSchema_DisabledFieldWithoutPatternOK(t *testing.T) {
	cfg := pattern.Config{
		Fields: map[string]pattern.FieldPattern{
			pattern.FieldTime: {Enabled: false},
		},
	}
	assert.NoError(t, cfg.ValidateSchema())
}
