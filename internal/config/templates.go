package config

import (
	"fmt"
	"os"
)

// Template returns the starter config with every key at its default.
func Template() string {
	return starterTemplate
}

// WriteTemplate writes the starter config; force allows replacing a file
// that already exists.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(starterTemplate), 0o600)
}

const starterTemplate = `# actionctl configuration

[log]
level = "info"  # trace | debug | info | warn | error | disabled
timestamp = true
no_color = false
`
