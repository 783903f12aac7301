package layout

import (
	"regexp"

	"github.com/a-h/templ"

	"github.com/mcoot/foundry/internal/model"
)

// PageData is shared by every page
type PageData struct {
	Title string
	User  *model.SessionUser
	// RefreshSeconds reloads the page periodically when positive
	RefreshSeconds int
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// itemStyle colours an item name. Anything but a hex colour is dropped.
func itemStyle(item model.Item) templ.Attributes {
	if !hexColor.MatchString(item.NameColor) {
		return templ.Attributes{}
	}
	return templ.Attributes{"style": "color:" + item.NameColor}
}

const stylesheet = `
body{font-family:system-ui,sans-serif;margin:0;background:#1a1b1e;color:#e9ecef}
nav{display:flex;justify-content:space-between;padding:.75rem 1.5rem;background:#25262b}
nav a{color:#e9ecef;font-weight:bold;text-decoration:none}
main{padding:1.5rem;display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fit,minmax(18rem,1fr))}
section{background:#25262b;border-radius:.5rem;padding:1rem}
h1{grid-column:1/-1;margin:0}
ul{list-style:none;padding:0;margin:0}
li{padding:.25rem 0}
.badge{background:#f59f00;color:#1a1b1e;border-radius:.25rem;padding:0 .3rem}
.muted{color:#868e96}
.log-success{color:#51cf66}
.log-warning{color:#fcc419}
`
