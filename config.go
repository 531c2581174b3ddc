package sqlsyntax

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// descriptorConfig is the YAML form of a Descriptor.
type descriptorConfig struct {
	Name            string   `yaml:"name"`
	Connection      string   `yaml:"connection"`
	Schema          string   `yaml:"schema"`
	Table           string   `yaml:"table"`
	Columns         []string `yaml:"columns"`
	NameRules       []struct {
		Pattern     string `yaml:"pattern"`
		Replacement string `yaml:"replacement"`
	} `yaml:"name_rules"`
	ForceUpperCase  bool   `yaml:"force_upper_case"`
	ShortenedAlias  bool   `yaml:"shortened_alias"`
	NoSnakeCase     bool   `yaml:"no_snake_case"`
	ResultDelimiter string `yaml:"result_delimiter"`
}

type descriptorFile struct {
	Entities []descriptorConfig `yaml:"entities"`
}

// LoadDescriptors reads a YAML document describing entity descriptors:
//
//	entities:
//	  - name: User
//	    connection: default
//	    schema: public
//	    shortened_alias: true
//	    name_rules:
//	      - pattern: serviceCode
//	        replacement: service_cd
//
// Every descriptor must carry a name; rewrite rule patterns must compile.
func LoadDescriptors(r io.Reader) ([]*Descriptor, error) {
	var file descriptorFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("sqlsyntax: decoding descriptors: %w", err)
	}
	descriptors := make([]*Descriptor, 0, len(file.Entities))
	for i, e := range file.Entities {
		if e.Name == "" {
			return nil, fmt.Errorf("sqlsyntax: entity %d has no name: %w", i, ErrConfiguration)
		}
		rules := make([]RewriteRule, 0, len(e.NameRules))
		for _, nr := range e.NameRules {
			rule, err := NewRewriteRule(nr.Pattern, nr.Replacement)
			if err != nil {
				return nil, fmt.Errorf("sqlsyntax: entity %q name rule %q: %w", e.Name, nr.Pattern, err)
			}
			rules = append(rules, rule)
		}
		descriptors = append(descriptors, &Descriptor{
			Name:            e.Name,
			ConnectionName:  e.Connection,
			Schema:          e.Schema,
			Table:           e.Table,
			Columns:         e.Columns,
			NameRules:       rules,
			ForceUpperCase:  e.ForceUpperCase,
			ShortenedAlias:  e.ShortenedAlias,
			NoSnakeCase:     e.NoSnakeCase,
			ResultDelimiter: e.ResultDelimiter,
		})
	}
	return descriptors, nil
}
