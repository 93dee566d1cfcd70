// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aibor/vmlaunch/internal/guestenv"
	"github.com/joho/godotenv"
)

// HostEnv returns the host environment snapshot from the given process
// environment entries.
//
// If envFile is not empty, the dotenv file is read from fsys and its values
// are applied on top of the process environment. The file's path is resolved
// relative to the root of fsys.
func HostEnv(environ []string, fsys fs.FS, envFile string) (guestenv.Host, error) {
	host := guestenv.HostFromEnviron(environ)

	if envFile == "" {
		return host, nil
	}

	values, err := ReadEnvFile(fsys, envFile)
	if err != nil {
		return nil, err
	}

	return host.Merge(values), nil
}

// ReadEnvFile reads variables from a dotenv file.
func ReadEnvFile(fsys fs.FS, path string) (map[string]string, error) {
	file, err := fsys.Open(fsPath(path))
	if err != nil {
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}

	return values, nil
}

// fsPath converts a host path into an [fs.FS] path relative to "/".
func fsPath(path string) string {
	return strings.TrimPrefix(filepath.Clean(path), "/")
}
