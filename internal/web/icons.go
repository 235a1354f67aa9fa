package web

import g "maragu.dev/gomponents"

const svgOpen = `<svg class="icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

func chevronDown() g.Node {
	return g.Raw(svgOpen + `<path d="m6 9 6 6 6-6"/></svg>`)
}

func chevronUp() g.Node {
	return g.Raw(svgOpen + `<path d="m18 15-6-6-6 6"/></svg>`)
}

func downloadIcon() g.Node {
	return g.Raw(svgOpen + `<path d="M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"/><polyline points="7 10 12 15 17 10"/><line x1="12" x2="12" y1="15" y2="3"/></svg>`)
}

func chevron(up bool) g.Node {
	if up {
		return chevronUp()
	}
	return chevronDown()
}
