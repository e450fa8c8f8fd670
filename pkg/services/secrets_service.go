package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/shu-assistant/shu/pkg/config"
	"github.com/shu-assistant/shu/pkg/host"
)

// SecretsFileName is the secrets file looked up in the config directory.
const SecretsFileName = "secrets.yaml"

// secretsFile is the on-disk layout:
//
//	plugins:
//	  github_digest:
//	    github_token: "{{.GITHUB_TOKEN}}"
//	users:
//	  user-123:
//	    github_digest:
//	      github_token: personal-override
type secretsFile struct {
	Plugins map[string]map[string]string            `yaml:"plugins"`
	Users   map[string]map[string]map[string]string `yaml:"users"`
}

// FileSecretsStore is a file-backed host.SecretsStore. Values support the
// {{.VAR}} environment expansion the config loader uses; the file is read
// once at startup and can be reloaded on demand.
type FileSecretsStore struct {
	path string

	mu   sync.RWMutex
	data secretsFile
}

var _ host.SecretsStore = (*FileSecretsStore)(nil)

// NewFileSecretsStore loads configDir/secrets.yaml. A missing file yields an
// empty store; a malformed file is an error.
func NewFileSecretsStore(configDir string) (*FileSecretsStore, error) {
	s := &FileSecretsStore{path: filepath.Join(configDir, SecretsFileName)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the secrets file.
func (s *FileSecretsStore) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.mu.Lock()
			s.data = secretsFile{}
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("reading secrets file %s: %w", s.path, err)
	}

	raw = config.ExpandEnv(raw)

	var parsed secretsFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parsing secrets file %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.data = parsed
	s.mu.Unlock()
	return nil
}

// Lookup resolves a secret for (pluginName, userID, key). An empty userID
// addresses the plugin-global section.
func (s *FileSecretsStore) Lookup(_ context.Context, pluginName, userID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if userID != "" {
		if plugins, ok := s.data.Users[userID]; ok {
			if v, ok := plugins[pluginName][key]; ok {
				return v, true, nil
			}
		}
		return "", false, nil
	}
	if v, ok := s.data.Plugins[pluginName][key]; ok {
		return v, true, nil
	}
	return "", false, nil
}
