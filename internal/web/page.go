package web

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/knightsbridge/faqsite/internal/faq"
)

// pageState is the per-visitor part of the page.
type pageState struct {
	Dark                bool
	Expanded            string
	InstructionsVisible bool
	Downloading         bool
}

func (s *Server) page(st pageState) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    "FAQ | Knightsbridge",
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/style.css")),
		},
		Body: []g.Node{
			c.Classes{"light": !st.Dark},
			siteHeader(st.Dark),
			h.Main(
				intro(),
				h.Div(h.Class("card"), h.ID("faq"),
					g.Map(s.content.entries, func(e faq.Entry) g.Node {
						return s.faqItem(e, e.ID == st.Expanded)
					}),
				),
				s.extensionPanel(st),
				contact(),
			),
			h.Script(h.Src("/static/status.js"), h.Defer()),
		},
	})
}

func siteHeader(dark bool) g.Node {
	label := "Dark mode"
	if dark {
		label = "Light mode"
	}
	return h.Header(h.Class("site-header"),
		h.A(h.Href("/"), g.Text("Knightsbridge")),
		h.Form(h.Method("post"), h.Action("/theme"),
			h.Button(h.Type("submit"), h.Class("theme-toggle"), h.Data("theme", themeName(dark)), g.Text(label)),
		),
	)
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func intro() g.Node {
	return h.Div(h.Class("intro"),
		h.H1(g.Text("Frequently Asked Questions")),
		h.P(g.Text("Find answers to common questions about our tokenization services and processes.")),
	)
}

func (s *Server) faqItem(e faq.Entry, open bool) g.Node {
	state := "closed"
	if open {
		state = "open"
	}
	return h.Div(h.Class("faq-item"), h.ID("faq-"+e.ID), h.Data("state", state), h.Data("id", e.ID),
		h.Form(h.Method("post"), h.Action("/faq/"+e.ID+"/toggle"),
			h.Button(h.Type("submit"), h.Class("faq-trigger"),
				h.Aria("expanded", strconv.FormatBool(open)),
				h.Aria("controls", "faq-content-"+e.ID),
				h.Span(g.Text(e.Question)),
				chevron(open),
			),
		),
		g.If(open,
			h.Div(h.Class("faq-content"), h.ID("faq-content-"+e.ID), g.Raw(s.content.answers[e.ID])),
		),
	)
}

func (s *Server) extensionPanel(st pageState) g.Node {
	label := "Download Extension"
	if st.Downloading {
		label = "Downloading..."
	}

	return h.Section(h.Class("extension"), h.ID("extension"),
		h.Div(h.Class("card"),
			h.H2(g.Text("Download Signify Extension")),
			h.P(h.Class("muted"), g.Text("Enhance your tokenization experience with our browser extension")),

			h.Form(h.Method("post"), h.Action("/download"), h.Target("_blank"), h.Class("download-row"),
				h.Button(h.Type("submit"), h.Class("download-button"), g.Attr("data-download-button"),
					g.If(st.Downloading, h.Disabled()),
					downloadIcon(),
					h.Span(g.Attr("data-label"), g.Text(label)),
				),
			),

			h.Form(h.Method("post"), h.Action("/instructions/toggle"),
				h.Button(h.Type("submit"), h.Class("instructions-toggle"),
					h.Aria("expanded", strconv.FormatBool(st.InstructionsVisible)),
					h.Span(g.Text("How to Install Signify")),
					chevron(st.InstructionsVisible),
				),
			),

			g.If(st.InstructionsVisible, s.instructions()),
		),
	)
}

func (s *Server) instructions() g.Node {
	return h.Div(h.Class("instructions"), h.ID("instructions"),
		h.H3(g.Text(s.content.guide.Title)),
		steps("steps", s.content.install),
		h.H4(g.Text("Configuration:")),
		steps("steps small", s.content.config),
	)
}

func steps(class string, items []string) g.Node {
	var nodes []g.Node
	for i, item := range items {
		nodes = append(nodes, h.Li(
			h.Span(h.Class("step-number"), g.Text(strconv.Itoa(i+1))),
			h.Span(g.Raw(item)),
		))
	}
	return h.Ol(h.Class(class), g.Group(nodes))
}

func contact() g.Node {
	return h.Div(h.Class("contact"),
		h.P(h.Class("muted"), g.Text("Still have questions?")),
		h.A(h.Href("/contact"), g.Text("Contact Us")),
	)
}

// framePage is shown when the archive could not be fetched. It links to the
// file host directly and also loads it in a hidden frame that is removed
// after lingerMillis.
func framePage(url string, lingerMillis int64) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    "Downloading Signify Extension",
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/style.css")),
		},
		Body: []g.Node{
			h.Main(
				h.Div(h.Class("card"),
					h.P(g.Text("Your download should start shortly. If it does not, ")),
					h.A(h.Href(url), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text("download the extension directly")),
					h.P(h.Class("muted"), g.Text("You can close this tab once the download has started.")),
				),
				h.IFrame(h.Src(url), g.Attr("data-cleanup"), h.Style("display:none;width:0;height:0"), g.Attr("hidden")),
			),
			h.Script(g.Rawf(`setTimeout(function(){var f=document.querySelector("iframe[data-cleanup]");if(f){f.remove();}},%d);`, lingerMillis)),
		},
	})
}
