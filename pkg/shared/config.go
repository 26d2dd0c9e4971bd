package shared

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// NodeConfig describes how to reach an Alliance-enabled chain.
type NodeConfig struct {
	Network    string
	LCDBaseURL string
	ChainID    string
}

var dotenvLoadOnce sync.Once

// NodeConfigFromEnv builds a NodeConfig from the environment, loading a .env
// file from the working directory (or any parent) first. Recognized keys are
// ALLIANCE_NETWORK / NETWORK and ALLIANCE_LCD_URL / LCD_URL, with
// MAINNET_- and TESTNET_-scoped overrides taking precedence for the selected
// network.
func NodeConfigFromEnv() (NodeConfig, error) {
	loadDotEnvIfPresent()

	network := firstNonEmptyEnv("ALLIANCE_NETWORK", "NETWORK")
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return NodeConfig{}, err
	}

	lcdBaseURL := firstNonEmptyEnv("ALLIANCE_LCD_URL", "LCD_URL")
	switch normalized {
	case NetworkMainnet:
		if scoped := firstNonEmptyEnv("MAINNET_ALLIANCE_LCD_URL", "MAINNET_LCD_URL"); scoped != "" {
			lcdBaseURL = scoped
		}
	case NetworkTestnet:
		if scoped := firstNonEmptyEnv("TESTNET_ALLIANCE_LCD_URL", "TESTNET_LCD_URL"); scoped != "" {
			lcdBaseURL = scoped
		}
	}
	if lcdBaseURL == "" {
		lcdBaseURL = DefaultLCDBaseURL(normalized)
	}

	return NodeConfig{
		Network:    normalized,
		LCDBaseURL: lcdBaseURL,
		ChainID:    ChainID(normalized),
	}, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}

		current := cwd
		for {
			candidate := filepath.Join(current, ".env")
			if _, statErr := os.Stat(candidate); statErr == nil {
				loadDotEnvFile(candidate)
				return
			}

			parent := filepath.Dir(current)
			if parent == current {
				return
			}
			current = parent
		}
	})
}

func loadDotEnvFile(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}

		separator := strings.Index(line, "=")
		if separator <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:separator])
		if !isValidEnvKey(key) {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}

		value := strings.TrimSpace(line[separator+1:])
		if len(value) >= 2 {
			first := value[0]
			last := value[len(value)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		_ = os.Setenv(key, value)
	}
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
