// Package state holds the gallery's transient UI state.
//
// # Overview
//
// A single State value is created at startup and owned by the gallery
// controller. It records the active theme, which program (if any) is shown in
// the preview pane, the last query typed into the search field and the
// current language selector. Only the theme survives a restart; it is
// persisted by the prefs package, not here.
//
// # Preview State Machine
//
// The preview pane has two states:
//
//	           Open(p)                  Open(p')
//	┌──────┐ ───────────> ┌─────────────┐ ───┐
//	│ Idle │              │ PreviewOpen │    │ replaces content
//	└──────┘ <─────────── └─────────────┘ <──┘
//	           Close()
//
//   - Open from Idle moves to PreviewOpen.
//   - Open from PreviewOpen replaces the shown program directly, without an
//     intermediate Idle.
//   - Close always succeeds and is a no-op when already Idle.
//
// Resolving an id to a program is the controller's job; State only ever sees
// programs that exist in the catalog.
//
// # Themes
//
// ThemeMode is either ThemeLight or ThemeDark. ParseThemeMode maps anything
// other than "dark" (ignoring case and surrounding space) to ThemeLight, so an
// unset or corrupted preference lands on the default.
//
// # Concurrency
//
// State has no locks. The Bubble Tea event loop delivers one message at a
// time and the controller mutates State only from inside Update, so there is
// a single writer by construction.
package state
