package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// PrivateKeyEnvVariable is the environment variable holding a hex encoded
// private key. When set, it takes precedence over the key file.
const PrivateKeyEnvVariable = "STARK_SIGNER_PRIVATE_KEY"

// Config is the top level config structure.
type Config struct {
	Key     Key
	Logging Logging
}

// Key holds the location of the signing key.
type Key struct {
	// KeyFile is a path to a file holding a hex encoded private key. A
	// relative path is resolved against the directory of the config file.
	KeyFile string

	// PrivateKey is the hex encoded private key, read from the environment
	// or from KeyFile. It is never read from the config file itself.
	PrivateKey string `toml:"-"`
}

// Logging holds the log level configuration.
type Logging struct {
	// Level is a go-log level name, e.g. "info" or "debug".
	Level string
}

// ReadConfig reads in the configuration file in .toml format and resolves
// the private key.
func ReadConfig(filePath string) (*Config, error) {
	config := &Config{}
	if _, err := toml.DecodeFile(filePath, config); err != nil {
		return nil, fmt.Errorf(
			"unable to decode .toml file [%s] error [%s]",
			filePath,
			err,
		)
	}

	if err := config.Key.resolvePrivateKey(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	return config, nil
}

// GetLogLevel returns the configured log level or "info" when not set.
func (l *Logging) GetLogLevel() string {
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

func (k *Key) resolvePrivateKey(configDir string) error {
	if envKey := os.Getenv(PrivateKeyEnvVariable); envKey != "" {
		k.PrivateKey = strings.TrimSpace(envKey)
		return nil
	}

	if k.KeyFile == "" {
		return nil
	}

	keyFile := k.KeyFile
	if !filepath.IsAbs(keyFile) {
		keyFile = filepath.Join(configDir, keyFile)
	}

	keyBytes, err := ioutil.ReadFile(keyFile)
	if err != nil {
		return fmt.Errorf("failed to read key file [%s]: [%v]", keyFile, err)
	}

	k.PrivateKey = strings.TrimSpace(string(keyBytes))

	return nil
}
