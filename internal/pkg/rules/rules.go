// Package rules loads keyword rule files for the CLI.
//
// A rules file is YAML:
//
//	keywords:
//	  - keyword: she
//	    ids: [pronoun, subject]
//	  - keyword: sea
//
// Every keyword needs at least one id; rules without explicit ids get
// a generated UUID so each keyword stays addressable in match output.
package rules

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tanglefoot/multimatch/pkg/multimatch"
)

// Rule is one keyword entry from a rules file.
type Rule struct {
	Keyword string   `yaml:"keyword"`
	IDs     []string `yaml:"ids,omitempty"`
}

type ruleFile struct {
	Keywords []Rule `yaml:"keywords"`
}

// Load reads and validates a YAML rules file.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(data)
}

// Parse validates rules from raw YAML, filling in generated ids where
// a rule declares none.
func Parse(data []byte) ([]Rule, error) {
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	if len(rf.Keywords) == 0 {
		return nil, fmt.Errorf("rules file declares no keywords")
	}
	for i := range rf.Keywords {
		r := &rf.Keywords[i]
		if r.Keyword == "" {
			return nil, fmt.Errorf("rule %d: empty keyword", i)
		}
		if len(r.IDs) == 0 {
			r.IDs = []string{uuid.NewString()}
		}
	}
	return rf.Keywords, nil
}

// Compile registers every rule and builds a string finder. Duplicate
// ids across rules surface as multimatch.ErrDuplicateKeywordID.
func Compile(rs []Rule) (*multimatch.StringFinder[string], error) {
	search := multimatch.NewStringSearch[string]()
	for _, r := range rs {
		if err := search.Register(r.Keyword, r.IDs...); err != nil {
			return nil, fmt.Errorf("register %q: %w", r.Keyword, err)
		}
	}
	return search.BuildFinder()
}
