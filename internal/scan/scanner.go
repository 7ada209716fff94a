// Package scan discovers installed games in library directories and adds
// new ones to the library.
package scan

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/asteroid-belt/nexus/internal/config"
	"github.com/asteroid-belt/nexus/internal/models"
)

// idLength is the number of hex characters kept from the path hash.
const idLength = 16

// Scanner discovers game directories.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a scanner. A nil logger discards output.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger}
}

// UniqueID derives a stable external id for a game directory owned by
// platform: "<platform>:<first 16 hex chars of sha256(path)>".
func UniqueID(platform models.Platform, path string) string {
	h := sha256.Sum256([]byte(filepath.Clean(path)))
	return strings.ToLower(string(platform)) + ":" + hex.EncodeToString(h[:])[:idLength]
}

// ScanDirectory returns one candidate game per sub-directory of dir.
// A missing directory yields no candidates. Symlinked entries are skipped.
func (s *Scanner) ScanDirectory(dir string, platform models.Platform) ([]models.Game, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	if platform == "" {
		platform = models.PlatformLocal
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var found []models.Game
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		entryPath := filepath.Join(dir, entry.Name())
		lstat, err := os.Lstat(entryPath)
		if err != nil || lstat.Mode()&os.ModeSymlink != 0 {
			continue
		}

		found = append(found, models.Game{
			Title:       titleFromDir(entry.Name()),
			Platform:    platform,
			UniqueID:    models.StringPtr(UniqueID(platform, entryPath)),
			InstallPath: entryPath,
			Executable:  findExecutable(entryPath),
		})
	}

	return found, nil
}

// ScanLibraries scans every configured directory. A directory that cannot
// be read is logged and skipped.
func (s *Scanner) ScanLibraries(libraries []config.LibraryDir) []models.Game {
	var all []models.Game
	for _, lib := range libraries {
		found, err := s.ScanDirectory(lib.Path, lib.Platform)
		if err != nil {
			s.logger.Warn("scan library directory", zap.String("path", lib.Path), zap.Error(err))
			continue
		}
		s.logger.Debug("scanned library directory", zap.String("path", lib.Path), zap.Int("found", len(found)))
		all = append(all, found...)
	}
	return all
}

// titleFromDir turns "hollow_knight" or "hollow-knight" into "hollow knight".
func titleFromDir(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

// findExecutable returns the first launchable file directly inside dir.
func findExecutable(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".exe") {
			return filepath.Join(dir, entry.Name())
		}
		info, err := entry.Info()
		if err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0 {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}
