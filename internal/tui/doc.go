// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the launcher's terminal front end.
//
// The root model owns five tabs. Settings edits the syncable launcher
// preferences through the settings reconciler. Instances lists, imports and
// deletes instances and manages the mods of one of them. Friends shows the
// social overview with optimistic removal. Search runs debounced username
// lookups. Skins uploads a skin or cape.
//
// Background results (search answers, realtime changes, import progress)
// arrive on channels the models wait on with commands, so no model ever
// touches the program.
package tui
