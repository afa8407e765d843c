// Package ui hosts the presentation in a Bubble Tea program.
//
// Core pieces:
//   - Model: tea.Model that feeds key messages to a present.Controller
//   - FrameRenderer: present.Renderer drawing title bar, slide and footer
//   - KeyMap: help.KeyMap built from the controller's key bindings
//   - Run: the terminal-owning event loop (alt screen, raw mode)
package ui
