// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import "github.com/muesli/termenv"

var (
	pendingStyle = termenv.Style{}.Foreground(termenv.ANSIYellow)
	validStyle   = termenv.Style{}.Foreground(termenv.ANSIGreen)
	invalidStyle = termenv.Style{}.Foreground(termenv.ANSIRed)
)

var countStyle = termenv.Style{}.Bold()
