// Package configs holds files shipped inside the binary: the default FAQ
// table written by the installer and the web chat widget.
package configs

import "embed"

//go:embed faq.json index.html
var FS embed.FS
