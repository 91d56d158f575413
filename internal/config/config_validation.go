// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var settingsValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks the `validate` tags of the final merged [Settings] before
// they are used at startup.
//
// Returns nil if the settings are valid, or an error wrapping both
// [ErrInvalidSettings] and the validator's field errors otherwise.
func (s *Settings) validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return nil
}
