package config

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from a single HashiCorp Vault
// KV v2 secret. The secret is read once, on the first successful lookup.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	cache      *secretCache
}

type secretCache struct {
	mu   sync.Mutex
	data map[string]any
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "appname").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	if server == "" {
		return VaultProvider{}, fmt.Errorf("server is required")
	}
	if token == "" {
		return VaultProvider{}, fmt.Errorf("token is required")
	}
	if mountPath == "" {
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	}
	if secretPath == "" {
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(token)

	vp := VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cache:      &secretCache{},
	}

	return vp, nil
}

// Get retrieves a configuration value from Vault.
//
// Returns an error if the secret cannot be read, does not hold the key or
// holds a non-string value under it.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secretData(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}

	return strValue, nil
}

// secretData returns the cached secret, reading it from Vault when absent.
// Failed reads are not cached.
func (vp VaultProvider) secretData(ctx context.Context) (map[string]any, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()

	if vp.cache.data != nil {
		return vp.cache.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.cache.data = secret.Data
	return secret.Data, nil
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider is used to initialize and register the VaultProvider.
// Vault is optional: when VAULT_ADDR is unset only environment variables are consulted.
type InitVaultProvider struct {
	Logger     *log.Logger `resolve:""`
	Server     string      `config:"VAULT_ADDR" default:"-"`
	Token      string      `config:"VAULT_TOKEN" default:"-"`
	MountPath  string      `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string      `config:"VAULT_SECRET_PATH" default:"mathsolver"`
}

// Initialize sets up the VaultProvider and registers it in a composite provider as a global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		ivp.Logger.Println("InitVaultProvider: VAULT_ADDR not set, using environment variables only")
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
