package vault

import (
	"fmt"

	"github.com/hashicorp/vault/api"
)

// SecretManager reads deploy-time secrets from HashiCorp Vault. It is
// optional: when Vault is disabled the config file and env vars are
// used as-is.
type SecretManager struct {
	client *api.Client
}

func NewSecretManager(address, token string) (*SecretManager, error) {
	config := api.DefaultConfig()
	config.Address = address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, err
	}

	client.SetToken(token)

	return &SecretManager{client: client}, nil
}

func (sm *SecretManager) read(path, key string) (string, error) {
	secret, err := sm.client.Logical().Read(path)
	if err != nil {
		return "", err
	}
	if secret == nil {
		return "", fmt.Errorf("no secret at %s", path)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected secret shape at %s", path)
	}
	value, ok := data[key].(string)
	if !ok {
		return "", fmt.Errorf("key %s missing at %s", key, path)
	}
	return value, nil
}

func (sm *SecretManager) GetDatabaseURL() (string, error) {
	return sm.read("secret/data/database", "connection_string")
}

func (sm *SecretManager) GetJWTSecret() (string, error) {
	return sm.read("secret/data/jwt", "secret")
}

func (sm *SecretManager) GetStripeSecretKey() (string, error) {
	return sm.read("secret/data/stripe", "secret_key")
}
