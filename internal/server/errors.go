// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package server

import "errors"

var (
	errNoServerAddress = errors.New("no listen address configured")
)
