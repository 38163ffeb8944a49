// Package emails holds the html/text templates for outbound email.
package emails

import "embed"

// FS contains every *.html and *.txt email template.
//
//go:embed *.html *.txt
var FS embed.FS
