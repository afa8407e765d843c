// Package deck compiles a slide document into a Deck.
//
// A document is plain text. It may open with a metadata block:
//
//	---
//	title: <string>
//	author: <string>
//	subtitle: <string>
//	---
//
// Every ATX header line ("#", "##", ... followed by whitespace and text)
// starts a new slide. All other lines are body text and are kept verbatim.
// Content between the metadata block and the first header is discarded
// unless the PreambleSlide policy is selected.
package deck
