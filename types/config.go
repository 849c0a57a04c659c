package types

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"io/ioutil"
)

// GazetteerCategory binds one word-list file to the attribute key its
// membership flag is stored under. Two categories may share a flag key; the
// later one wins for tokens that are members of both.
type GazetteerCategory struct {
	Name string `yaml:"name" json:"name"`
	File string `yaml:"file" json:"file"`
	Flag string `yaml:"flag" json:"flag"`
}

type Configuration struct {
	Separator  string              `yaml:"separator" json:"separator"`
	Fields     []string            `yaml:"fields" json:"fields"`
	Gazetteers []GazetteerCategory `yaml:"gazetteers" json:"gazetteers"`
}

// DefaultConfiguration matches the corpus this extractor was built for:
// space-separated "y w pos chk" records and the nine stock gazetteers.
func DefaultConfiguration() Configuration {
	return Configuration{
		Separator: " ",
		Fields:    []string{FieldLabel, FieldWord, FieldPOS, FieldChunk},
		Gazetteers: []GazetteerCategory{
			{Name: "days", File: "days.txt", Flag: "gaz-d"},
			{Name: "months", File: "months.txt", Flag: "gaz-m"},
			{Name: "locations", File: "locations.txt", Flag: "gaz-l"},
			{Name: "artifacts", File: "artifacts.txt", Flag: "gaz-a"},
			{Name: "money", File: "money.txt", Flag: "gaz-$"},
			{Name: "entertainment", File: "entertainment.txt", Flag: "gaz-e"},
			{Name: "livingthings", File: "livingthings.txt", Flag: "gaz-lt"},
			{Name: "plants", File: "plants.txt", Flag: "gaz-p"},
			{Name: "locomotives", File: "locomotives.txt", Flag: "gaz-lm"},
		},
	}
}

func LoadConfiguration(filePath string) (Configuration, error) {
	cfg := DefaultConfiguration()
	buf, err := ioutil.ReadFile(filePath)
	if err != nil {
		return Configuration{}, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Configuration{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func (cfg Configuration) Validate() error {
	if len([]rune(cfg.Separator)) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", cfg.Separator)
	}
	if len(cfg.Fields) == 0 {
		return fmt.Errorf("fields header is empty")
	}
	hasWord := false
	for _, field := range cfg.Fields {
		if field == FieldWord {
			hasWord = true
		}
	}
	if !hasWord {
		return fmt.Errorf("fields header must contain %q", FieldWord)
	}
	for _, gaz := range cfg.Gazetteers {
		if gaz.Name == "" || gaz.File == "" || gaz.Flag == "" {
			return fmt.Errorf("gazetteer category %+v is missing name, file or flag", gaz)
		}
	}
	return nil
}

// FlagKeys returns the gazetteer flag keys in catalog order, deduplicated.
// The template engine derives its gaz-* unigram fields from this.
func (cfg Configuration) FlagKeys() []string {
	seen := make(map[string]bool)
	keys := make([]string, 0, len(cfg.Gazetteers))
	for _, gaz := range cfg.Gazetteers {
		if seen[gaz.Flag] {
			continue
		}
		seen[gaz.Flag] = true
		keys = append(keys, gaz.Flag)
	}
	return keys
}
