package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	require.NoError(t, cfg.Validate())
	require.Equal(t, " ", cfg.Separator)
	require.Equal(t, []string{FieldLabel, FieldWord, FieldPOS, FieldChunk}, cfg.Fields)
	require.Len(t, cfg.Gazetteers, 9)
}

func TestLoadConfigurationOverridesDefaults(t *testing.T) {
	body := `
separator: "\t"
gazetteers:
  - name: days
    file: days.txt
    flag: gaz-d
`
	filePath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(body), 0644))

	cfg, err := LoadConfiguration(filePath)
	require.NoError(t, err)
	require.Equal(t, "\t", cfg.Separator)
	// Fields were not overridden and keep their default.
	require.Equal(t, []string{FieldLabel, FieldWord, FieldPOS, FieldChunk}, cfg.Fields)
	require.Len(t, cfg.Gazetteers, 1)
	require.Equal(t, "gaz-d", cfg.Gazetteers[0].Flag)
}

func TestLoadConfigurationErrors(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	badYaml := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badYaml, []byte("separator: [\n"), 0644))
	_, err = LoadConfiguration(badYaml)
	require.Error(t, err)

	badSep := filepath.Join(t.TempDir(), "sep.yaml")
	require.NoError(t, os.WriteFile(badSep, []byte("separator: \"::\"\n"), 0644))
	_, err = LoadConfiguration(badSep)
	require.Error(t, err)
	require.Contains(t, err.Error(), "separator")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfiguration()

	cfg.Fields = nil
	require.Error(t, cfg.Validate())

	cfg.Fields = []string{FieldLabel, FieldPOS}
	require.Error(t, cfg.Validate())

	cfg = DefaultConfiguration()
	cfg.Gazetteers = append(cfg.Gazetteers, GazetteerCategory{Name: "broken", File: "broken.txt"})
	require.Error(t, cfg.Validate())
}

func TestFlagKeysDeduplicates(t *testing.T) {
	cfg := Configuration{
		Separator: " ",
		Fields:    []string{FieldWord},
		Gazetteers: []GazetteerCategory{
			{Name: "days", File: "days.txt", Flag: "gaz-d"},
			{Name: "holidays", File: "holidays.txt", Flag: "gaz-d"},
			{Name: "months", File: "months.txt", Flag: "gaz-m"},
		},
	}
	require.Equal(t, []string{"gaz-d", "gaz-m"}, cfg.FlagKeys())
}
