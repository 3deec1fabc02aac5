package configuration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/rbviz/configuration"
)

func writeFile(t *testing.T, name string, content []byte) string {
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, content, 0o600))

	return filePath
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "123", "test")
	require.NoError(t, testFlagSet.Set("A", "321"))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.Equal(t, "321", config.String("A"))
	require.Equal(t, "321", config.String("a"))
}

func TestFetchEnvVars(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("B", "322", "test")

	t.Setenv("TEST_B", "321")
	t.Setenv("TEST_C", "321")

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.Equal(t, "321", config.String("B"))

	_, exists := config.All()["c"]
	require.False(t, exists, "expected read config value to not exist")
}

func TestFetchJSONFile(t *testing.T) {
	content, err := json.MarshalIndent(map[string]any{"C": 321, "Nested": map[string]any{"Key": "value"}}, "", "    ")
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", content)))

	require.Equal(t, 321, config.Int("C"))
	require.Equal(t, "value", config.String("nested.key"))
}

func TestFetchYAMLFile(t *testing.T) {
	content, err := yaml.Marshal(map[string]any{"D": 321, "Nested": map[string]any{"Key": "value"}})
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yaml", content)))

	require.Equal(t, 321, config.Int("D"))
	require.Equal(t, "value", config.String("nested.key"))
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	require.ErrorIs(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.json")), configuration.ErrConfigDoesNotExist)
	require.ErrorIs(t, config.LoadFile(writeFile(t, "config.toml", []byte("a = 1"))), configuration.ErrUnknownConfigFormat)
	require.Error(t, config.LoadFile(writeFile(t, "config.json", []byte("{"))))
}

func TestMergeParameters(t *testing.T) {
	content, err := json.Marshal(map[string]int{"E": 321, "F": 100})
	require.NoError(t, err)

	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.Int("F", 321, "test")
	testFlagSet.Int("G", 7, "test")

	t.Setenv("TEST_F", "322")

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", content)))
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	all := config.All()
	for _, key := range []string{"e", "f", "g"} {
		_, exists := all[key]
		require.True(t, exists, "expected %s to exist", key)
	}

	// all keys should be lower cased
	for _, key := range []string{"E", "F", "G"} {
		_, exists := all[key]
		require.False(t, exists, "expected %s to not exist", key)
	}

	require.Equal(t, 321, config.Int("E"))
	require.Equal(t, 322, config.Int("F"))
	require.Equal(t, "322", config.String("F"))

	// defaults of flags only fill in missing keys
	require.Equal(t, 7, config.Int("G"))
}

type testParameters struct {
	BindAddress string `default:"localhost:8080" usage:"the bind address"`
	Seed        struct {
		Count  int `shorthand:"c" default:"10" usage:"the number of keys"`
		MaxKey int `name:"maxKey" usage:"the largest key"`
	}
	Verbose bool
	Tags    []string `default:"a,b"`
}

func TestBindParameters(t *testing.T) {
	parameters := &testParameters{}
	parameters.Seed.MaxKey = 99

	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)

	config := configuration.New()
	config.BindParameters(testFlagSet, "app", parameters)

	require.Equal(t, "localhost:8080", parameters.BindAddress)
	require.Equal(t, 10, parameters.Seed.Count)
	require.Equal(t, 99, parameters.Seed.MaxKey)
	require.Equal(t, []string{"a", "b"}, parameters.Tags)
	require.NotNil(t, testFlagSet.ShorthandLookup("c"))

	require.NoError(t, testFlagSet.Parse([]string{"--app.seed.maxKey=500", "-c", "3"}))

	t.Setenv("RBVIZ_APP_BINDADDRESS", "0.0.0.0:80")
	t.Setenv("RBVIZ_APP_VERBOSE", "true")

	// load the flags first so the env vars find the keys they override and then again to let flags win
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("RBVIZ"))
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	parameters.BindAddress = "overwritten"
	config.UpdateBoundParameters()

	require.Equal(t, "0.0.0.0:80", parameters.BindAddress)
	require.Equal(t, 3, parameters.Seed.Count)
	require.Equal(t, 500, parameters.Seed.MaxKey)
	require.True(t, parameters.Verbose)
	require.Equal(t, []string{"a", "b"}, parameters.Tags)
}

func TestUnmarshal(t *testing.T) {
	content := []byte("seed:\n  Count: 4\n  maxKey: 40\n")

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yml", content)))

	var seed struct {
		Count  int `koanf:"count"`
		MaxKey int `koanf:"maxkey"`
	}
	require.NoError(t, config.Unmarshal("seed", &seed))
	require.Equal(t, 4, seed.Count)
	require.Equal(t, 40, seed.MaxKey)
}
