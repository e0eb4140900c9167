// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the event planner command-line client.
//
// It wires cobra commands to the server API through [adapter.ServerAdapter]:
// register, login, events add and events list.
package client
