package page

// Menu is the collapsible mobile navigation.
type Menu struct {
	Open   bool // menu panel shown
	Active bool // toggle button highlighted
}

func (m *Menu) Toggle() {
	m.Open = !m.Open
	m.Active = !m.Active
}

// LinkClicked closes the menu after navigation.
func (m *Menu) LinkClicked() {
	m.Open = false
	m.Active = false
}

// NavLink is one entry of the navigation bar. The call-to-action link never
// takes part in active highlighting.
type NavLink struct {
	Label  string
	Href   string
	CTA    bool
	Active bool
}

type Nav struct {
	Links []*NavLink
}

// SectionVisible marks the links pointing at id as active and every other
// regular link as inactive, provided the section is visible enough.
func (n *Nav) SectionVisible(id string, ratio float64) {
	if ratio <= 0 || ratio < NavThreshold {
		return
	}
	for _, l := range n.Links {
		if l.CTA {
			continue
		}
		l.Active = l.Href == "#"+id
	}
}

func (n *Nav) ActiveHref() string {
	for _, l := range n.Links {
		if l.Active {
			return l.Href
		}
	}
	return ""
}
