// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive monitoring application runtime.
//
// It wires credential loading, the validation and initial-status passes, the
// concurrent polling phase, and the final report into a single process
// lifecycle.
package client
