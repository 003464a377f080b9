package models

// KeywordRule maps note keywords to a category
type KeywordRule struct {
	Category Category `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// KeywordRulesConfig represents the structure of the keyword rules YAML file
type KeywordRulesConfig struct {
	Rules []KeywordRule `yaml:"rules"`
}
