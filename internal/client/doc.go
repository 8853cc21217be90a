// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal client: it checks that the lifecycle
// server answers, then hands the terminal to the dashboard.
package client
