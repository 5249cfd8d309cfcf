// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] can start the server:
// it needs an address to listen on and an activation service to call.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return ErrInvalidServerConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Link) == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
