package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders a starter dotsync.toml: the effective
// defaults as TOML with every value commented out, so dropping the
// file at the repository root changes nothing until a line is
// uncommented.
func GenerateConfigContent() (string, error) {
	rendered, err := toml.Marshal(Default())
	if err != nil {
		return "", err
	}

	header := "# dotsync configuration. Uncomment a line to override the default.\n\n"
	return header + commentOutConfigValues(string(rendered)), nil
}

// commentOutConfigValues comments out every assignment line, keeping
// blank lines, existing comments and section headers as-is
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
