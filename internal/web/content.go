package web

import (
	"html"
	"log"

	"github.com/knightsbridge/faqsite/internal/faq"
	"github.com/knightsbridge/faqsite/internal/install"
	"github.com/knightsbridge/faqsite/internal/markup"
)

// content is the static page text, converted to HTML once at startup.
type content struct {
	entries []faq.Entry
	answers map[string]string
	guide   install.Guide
	install []string
	config  []string
}

func renderContent() content {
	c := content{
		entries: faq.Entries(),
		answers: make(map[string]string),
		guide:   install.Instructions(),
	}
	for _, e := range c.entries {
		c.answers[e.ID] = toHTML(e.Answer, markup.Block)
	}
	for _, st := range c.guide.Install {
		c.install = append(c.install, toHTML(st.Text, markup.Inline))
	}
	for _, st := range c.guide.Configuration {
		c.config = append(c.config, toHTML(st.Text, markup.Inline))
	}
	return c
}

func toHTML(src string, convert func(string) (string, error)) string {
	out, err := convert(src)
	if err != nil {
		log.Printf("web: rendering markdown: %v", err)
		return html.EscapeString(src)
	}
	return out
}
