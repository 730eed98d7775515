// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, SERVER_, STORAGE_ and EVENTS_ variables
// declared by the `env` and `envPrefix` tags of [StructuredConfig]. Unset
// variables leave the zero value so the later sources in the builder can
// still supply them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}

	return nil
}
