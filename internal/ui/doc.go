// Package ui is the terminal front end of the deck, built on Bubble Tea.
//
// Pieces:
//   - Model: the root tea.Model. Owns the deck, frame clock and layout.
//   - Dispatcher: routes navigation to the active stepper or the controller.
//   - KeyMap: configurable bindings from keys to Actions.
//   - Controls: prev, next and fullscreen buttons with focus and hit-testing.
//   - Stage: fixed 16:9 canvas scaled into the terminal.
//   - Transition: spring-driven horizontal slide-in between slides.
//   - OverlayStack: views drawn above the stage, such as the key help.
package ui
