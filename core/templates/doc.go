// Package templates renders one of four fixed HTML email layouts
// (notification, welcome, alert, report) by substituting caller-supplied
// fields into a process-wide immutable layout table.
//
// This is deliberately not a general templating facility: the layouts are
// data, the substitution set is fixed per kind, and optional sub-structures
// (button, features, details, stats) render as empty fragments when absent.
//
//	html, err := templates.Render(templates.KindWelcome, templates.Data{
//		"title":    "Welcome aboard",
//		"message":  "Thanks for signing up!",
//		"features": []string{"Realtime sync", "Unlimited projects"},
//	})
//
// Values are interpolated into the markup without escaping. Callers that
// forward untrusted input are responsible for sanitizing it first.
package templates
