package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmarsh/ticklist/pkg/cryptox"
	"github.com/bitmarsh/ticklist/pkg/jwtx"
)

// initTokenCodec loads the HMAC signing secret from cfg.TokenSecretFile,
// generating and persisting a fresh one if the file does not exist yet.
// Tokens survive restarts as long as the secret file does.
func initTokenCodec(cfg Config) (*jwtx.Codec, error) {
	secret, err := loadOrGenerateTokenSecret(cfg.TokenSecretFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token secret: %w", err)
	}

	codec, err := jwtx.NewCodec([]byte(secret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	return codec, nil
}

func loadOrGenerateTokenSecret(file string) (string, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		generated, err := cryptox.GenerateSecret(cryptox.SecretSize512)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(file, []byte(generated), 0600); err != nil {
			return "", err
		}
		return generated, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
