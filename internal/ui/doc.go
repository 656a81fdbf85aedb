// Package ui contains the Bubble Tea program that powers the panel picker.
// The Model focuses on message orchestration; dedicated helpers own key
// handling, rendering, and list state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function (key presses in
//     internal/ui/input.go, window sizing in the resize handler).
//   - List cursor and viewport math live in internal/ui/state.List; the
//     engine owns filtering, so key input only pushes the new query down
//     and swaps the match set back into the list.
//
// Display lifecycle:
//   - Init opens the interactive episode on the layout and runs the
//     engine's setup routine. With the panel mode enabled, that setup
//     routine binds a display session which owns the panel surface.
//   - View pushes the query line and candidate overlay into their
//     surfaces, then asks the layout for a redraw cycle; the session's
//     frame synchronizer runs inside that cycle before the frame is
//     composed from the surfaces' visible content.
//   - Enter, escape, and ctrl+g end the episode over three different exit
//     paths (confirm, cancel, multi-level abort); the session's teardown
//     guard restores the pre-session window state on all of them.
package ui
