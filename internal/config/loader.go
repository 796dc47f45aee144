package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load loads hexswap configuration, applies environment overrides and
// validates the result.
// Search order: customPath -> ~/.hexswap/configs/hexswap.yaml -> ./configs/hexswap.yaml -> embedded default
func Load(customPath string) (HexSwapConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (HexSwapConfig, error) {
	// Missing keys keep their default values.
	cfg := DefaultHexSwapConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hexswap.yaml"); userCfgPath != "" {
		if ok := tryFile(userCfgPath, &cfg); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if ok := tryFile(filepath.Join("configs", "hexswap.yaml"), &cfg); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexSwapYAML, &cfg); err != nil {
		return DefaultHexSwapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile decodes path over cfg. A file that fails to parse leaves cfg
// untouched.
func tryFile(path string, cfg *HexSwapConfig) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	parsed := *cfg
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return false
	}
	*cfg = parsed
	return true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexswap", "configs", filename)
}

// ApplyEnv overrides audio settings from the environment.
//
//	HEXSWAP_AUDIO_ENABLED  bool
//	HEXSWAP_MASTER_VOLUME  0-100
func ApplyEnv(cfg *HexSwapConfig) {
	if enabled := os.Getenv("HEXSWAP_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("HEXSWAP_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			v := float64(val) / 100.0
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			cfg.Audio.MasterVolume = v
		}
	}
}
