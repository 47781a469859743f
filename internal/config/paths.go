package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory containing the running binary, with
// symlinks resolved. The config file is ALWAYS looked up relative to the
// executable, never the current working directory, so the tool behaves the
// same whether launched from a shell or double-clicked on the share.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveConfigPath anchors a relative config file name at the executable
// directory. Absolute paths pass through untouched.
func ResolveConfigPath(configFile string) (string, error) {
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	if filepath.IsAbs(configFile) {
		return configFile, nil
	}

	exeDir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(exeDir, configFile), nil
}

// resolvePath returns the absolute form of a configured data path with
// symlinks resolved, matching what the validation step checked on disk.
// The input paths are interpreted against the working directory.
func resolvePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
