// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the offline core into one process lifecycle.
//
// A [Runtime] is built once by [NewRuntime], handed to the bridge and the
// background workers, and torn down explicitly with [Runtime.Close]. No
// package-level state outlives it.
package client
