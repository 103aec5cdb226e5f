// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

// Package client implements the sync client application runtime.
//
// It wires configuration, local storage, the remote adapter, and the
// client services into a single process lifecycle with a background
// refresh job.
package client
