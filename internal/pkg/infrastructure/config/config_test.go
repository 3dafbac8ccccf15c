package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestReturnsEnvironmentValueWhenSet(t *testing.T) {
	is := is.New(t)
	t.Setenv("FACILITY_TEST_VAR", "from-env")

	is.Equal("from-env", GetVariableOrDefault(context.Background(), "FACILITY_TEST_VAR", "fallback"))
}

func TestFallsBackToFileIndirection(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "secret")
	err := os.WriteFile(path, []byte("from-file\n"), 0600)
	is.NoErr(err)

	t.Setenv("FACILITY_TEST_VAR_FILE", path)

	is.Equal("from-file", GetVariableOrDefault(context.Background(), "FACILITY_TEST_VAR", "fallback"))
}

func TestEnvironmentTakesPrecedenceOverFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "secret")
	err := os.WriteFile(path, []byte("from-file"), 0600)
	is.NoErr(err)

	t.Setenv("FACILITY_TEST_VAR", "from-env")
	t.Setenv("FACILITY_TEST_VAR_FILE", path)

	is.Equal("from-env", GetVariableOrDefault(context.Background(), "FACILITY_TEST_VAR", "fallback"))
}

func TestReturnsDefaultWhenNothingIsSet(t *testing.T) {
	is := is.New(t)

	is.Equal("fallback", GetVariableOrDefault(context.Background(), "FACILITY_UNSET_VAR", "fallback"))
}

func TestUnreadableFileFallsBackToDefault(t *testing.T) {
	is := is.New(t)

	t.Setenv("FACILITY_TEST_VAR_FILE", filepath.Join(t.TempDir(), "does-not-exist"))

	is.Equal("fallback", GetVariableOrDefault(context.Background(), "FACILITY_TEST_VAR", "fallback"))
}
