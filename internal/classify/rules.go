package classify

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TagRule maps a tag name to the keywords that trigger it.
type TagRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Rules is the immutable keyword configuration driving classification.
// Tag rules are evaluated in order, so tag output order is deterministic.
type Rules struct {
	Tags          []TagRule `yaml:"tags"`
	HighUrgency   []string  `yaml:"high_urgency"`
	MediumUrgency []string  `yaml:"medium_urgency"`
	DefaultTag    string    `yaml:"default_tag"`
}

// DefaultRules returns the built-in cybersecurity keyword tables.
func DefaultRules() Rules {
	return Rules{
		Tags: []TagRule{
			{Name: "vulnerability", Keywords: []string{"vulnerability", "cve", "exploit", "patch"}},
			{Name: "malware", Keywords: []string{"malware", "trojan", "spyware", "botnet", "backdoor"}},
			{Name: "ransomware", Keywords: []string{"ransomware", "extortion", "ransom"}},
			{Name: "phishing", Keywords: []string{"phishing", "credential theft", "spoofed", "scam"}},
			{Name: "breach", Keywords: []string{"breach", "leaked", "stolen data", "exposed database"}},
			{Name: "ddos", Keywords: []string{"ddos", "denial of service", "denial-of-service"}},
			{Name: "apt", Keywords: []string{"apt", "nation-state", "espionage", "state-sponsored"}},
			{Name: "cloud", Keywords: []string{"cloud", "aws", "azure", "kubernetes", "saas"}},
		},
		HighUrgency: []string{
			"zero-day", "critical", "actively exploited", "in the wild",
			"emergency", "mass exploitation", "under attack",
		},
		MediumUrgency: []string{
			"vulnerability", "exploit", "patch", "malware", "ransomware",
			"phishing", "breach", "warning",
		},
		DefaultTag: "cybersecurity",
	}
}

// LoadRules reads a YAML rules file. Sections left out of the file keep
// their built-in defaults, so an override file can replace just the tag
// table or just the urgency lists.
func LoadRules(path string) (Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file %s: %w", path, err)
	}

	rules := DefaultRules()
	var loaded Rules
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return Rules{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	if len(loaded.Tags) > 0 {
		rules.Tags = loaded.Tags
	}
	if len(loaded.HighUrgency) > 0 {
		rules.HighUrgency = loaded.HighUrgency
	}
	if len(loaded.MediumUrgency) > 0 {
		rules.MediumUrgency = loaded.MediumUrgency
	}
	if strings.TrimSpace(loaded.DefaultTag) != "" {
		rules.DefaultTag = loaded.DefaultTag
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return rules, nil
}

func (r Rules) Validate() error {
	if strings.TrimSpace(r.DefaultTag) == "" {
		return fmt.Errorf("default_tag must not be empty")
	}
	for i, rule := range r.Tags {
		if strings.TrimSpace(rule.Name) == "" {
			return fmt.Errorf("tags[%d]: name must not be empty", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("tags[%d] (%s): keywords must not be empty", i, rule.Name)
		}
	}
	return nil
}
