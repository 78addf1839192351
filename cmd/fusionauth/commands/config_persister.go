package commands

import (
	"sync"
	"time"
)

// ConfigPersister implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateServerToken updates the stored JWT and related metadata for the
// server with the given URL.
func (p *ConfigPersister) UpdateServerToken(serverURL, token string, expiresAt time.Time, refreshToken string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	serverName, err := findServerName(config, serverURL)
	if err != nil {
		return err
	}

	serverConfig := config.Servers[serverName]
	serverConfig.Token = token

	if !expiresAt.IsZero() {
		serverConfig.TokenExpiresAt = &expiresAt
	}

	if refreshToken != "" {
		serverConfig.RefreshToken = refreshToken
	}

	now := time.Now()
	serverConfig.LastRefreshed = &now

	return saveConfigStruct(config)
}
