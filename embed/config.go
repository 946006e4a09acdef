// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package embed

import (
	"errors"
	"strings"
)

// Config holds configuration for the OpenAI-compatible embedding provider.
type Config struct {
	// Host is the base URL of the embedding service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server.
	Host string

	// Model is the embedding model identifier.
	// Example: "embeddinggemma", "text-embedding-3-small"
	Model string

	// Dim is the dimension the model produces. Defaults to DefaultDim.
	Dim int
}

var (
	// ErrHostRequired is returned when the embedding host URL is missing.
	ErrHostRequired = errors.New("embedding host required")

	// ErrModelRequired is returned when the embedding model name is missing.
	ErrModelRequired = errors.New("embedding model required")
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return ErrHostRequired
	}
	if strings.TrimSpace(c.Model) == "" {
		return ErrModelRequired
	}
	return nil
}
