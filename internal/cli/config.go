package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/terra-money/alliance-sdk-go/pkg/shared"
)

// fileConfig mirrors the TOML config file. All fields are optional.
type fileConfig struct {
	Network           string  `toml:"network"`
	Node              string  `toml:"node"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// nodeSettings is the fully resolved connection configuration. Precedence is
// environment < config file < flags.
type nodeSettings struct {
	shared.NodeConfig
	RequestsPerSecond float64
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "alliancectl", "config.toml")
}

// loadFileConfig reads a TOML config file. A missing file is only an error
// when the path was given explicitly.
func loadFileConfig(path string, explicit bool) (fileConfig, error) {
	var config fileConfig
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return config, nil
		}
		return config, fmt.Errorf("config file %s: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

func resolveNodeSettings(options *rootOptions) (nodeSettings, error) {
	envConfig, err := shared.NodeConfigFromEnv()
	if err != nil {
		return nodeSettings{}, err
	}

	configPath := options.configPath
	explicit := configPath != ""
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	file, err := loadFileConfig(configPath, explicit)
	if err != nil {
		return nodeSettings{}, err
	}

	network := envConfig.Network
	if file.Network != "" {
		network = file.Network
	}
	if options.network != "" {
		network = options.network
	}
	normalized, err := shared.NormalizeNetwork(network)
	if err != nil {
		return nodeSettings{}, err
	}

	// The env URL only applies when the resolved network is still the one the
	// environment selected; compare normalized forms so a cased flag value
	// like "MainNet" does not drop it.
	node := ""
	if normalized == envConfig.Network {
		node = envConfig.LCDBaseURL
	}
	if file.Node != "" {
		node = file.Node
	}
	if options.node != "" {
		node = options.node
	}
	if node == "" {
		node = shared.DefaultLCDBaseURL(normalized)
	}

	return nodeSettings{
		NodeConfig: shared.NodeConfig{
			Network:    normalized,
			LCDBaseURL: node,
			ChainID:    shared.ChainID(normalized),
		},
		RequestsPerSecond: file.RequestsPerSecond,
	}, nil
}
