package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/review-desk/internal/core"
)

// ProfileFile is the per-project defaults file.
const ProfileFile = ".review-desk.yml"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// LoadProfile loads and parses the .review-desk.yml file from dir. When the
// file does not exist the default profile is returned with ErrConfigNotFound.
func LoadProfile(dir string) (*core.Profile, error) {
	path := filepath.Join(dir, ProfileFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultProfile(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", ProfileFile, err)
	}

	profile := core.DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	if !core.IsSupportedLanguage(profile.Language) {
		return nil, fmt.Errorf("%w: unsupported language %q", ErrConfigParsing, profile.Language)
	}
	return profile, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
