// Package ui provides the terminal user interface for the gallery.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns only presentation state (sizes,
// selection, search field, preview viewport, toast); everything the user can
// change about the gallery lives in gallery.Controller, which the model calls
// from Update. Rendering reads the controller on every frame, so the card
// list always reflects the current query and language.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key dispatch and the Run function
//   - cards.go: Card list pane, the "No results" placeholder and titled boxes
//   - preview.go: Code preview pane with glamour highlighting and file footer
//   - search.go: Search field; the query is applied on every keystroke
//   - header.go: Title bar, command bar and toast line
//   - help.go: Help overlay built from the key map
//   - theme.go: Light and dark palettes plus Lipgloss styles
//
// # Layout
//
// Terminals at least LayoutWideWidth columns wide show the card list and the
// preview side by side; the list keeps navigation keys and opening another
// card replaces the preview. Narrower terminals show the preview in place of
// the list and route j/k to scrolling.
//
// # Event Flow
//
//  1. Run() builds the Model and starts the Bubble Tea program
//  2. Key presses become Controller calls (Query, Open, Download, ToggleTheme)
//  3. Clipboard writes run as a tea.Cmd and come back as a notice message
//  4. Notices pop a toast whose hide timer carries a sequence number
//  5. Context cancellation cleanly shuts down the program
//
// # Key Bindings
//
//   - /: Search (enter or esc leaves the field, the query stays)
//   - x: Clear search
//   - L: Cycle language filter
//   - j/k, g/G: Move through cards
//   - enter or o: Open preview
//   - s: Save selected program to a file
//   - c / d: Copy or download the previewed code
//   - ctrl+d/ctrl+u: Scroll the preview
//   - esc: Close preview
//   - T: Toggle light/dark
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
