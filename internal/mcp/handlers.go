package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/knightsbridge/faqsite/internal/extension"
	"github.com/knightsbridge/faqsite/internal/faq"
	"github.com/knightsbridge/faqsite/internal/install"
)

// handleListFAQs returns every entry as question and answer pairs.
func (s *Server) handleListFAQs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	entries := faq.Entries()
	sb.WriteString(fmt.Sprintf("Found %d question(s):\n", len(entries)))
	for _, e := range entries {
		sb.WriteString("\n")
		writeEntry(&sb, e)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetFAQ returns one entry.
func (s *Server) handleGetFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	entry, ok := faq.Lookup(strings.TrimSpace(id))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No FAQ entry with id %q.", id)), nil
	}

	var sb strings.Builder
	writeEntry(&sb, entry)
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetInstallInstructions returns the install guide as markdown.
func (s *Server) handleGetInstallInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatGuide(install.Instructions())), nil
}

// handleGetDownloadURL returns where the extension archive can be fetched.
func (s *Server) handleGetDownloadURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(fmt.Sprintf(
		"URL: %s\nFile name: %s\nVendor URL for the extension settings: %s\n",
		s.source.URL(), s.source.Filename, install.VendorURL,
	)), nil
}

// handleDownloadStats summarizes the download ledger.
func (s *Server) handleDownloadStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := s.ledger.Summarize(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to summarize downloads: %v", err)), nil
	}
	if summary.Total == 0 {
		return mcp.NewToolResultText("No download attempts recorded yet."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d attempt(s) recorded:\n", summary.Total))

	strategies := make([]string, 0, len(summary.Counts))
	for name := range summary.Counts {
		strategies = append(strategies, name)
	}
	sort.Strings(strategies)
	for _, name := range strategies {
		sb.WriteString(fmt.Sprintf("\n%s:", name))
		outcomes := summary.Counts[name]
		keys := make([]extension.Outcome, 0, len(outcomes))
		for o := range outcomes {
			keys = append(keys, o)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, o := range keys {
			sb.WriteString(fmt.Sprintf(" %s=%d", o, outcomes[o]))
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func writeEntry(sb *strings.Builder, e faq.Entry) {
	sb.WriteString(fmt.Sprintf("## %s. %s\n%s\n", e.ID, e.Question, e.Answer))
}

// formatGuide renders the guide as markdown for agent consumption.
func formatGuide(g install.Guide) string {
	var sb strings.Builder
	sb.WriteString("# " + g.Title + "\n\n")
	for _, st := range g.Install {
		sb.WriteString(fmt.Sprintf("%d. %s\n", st.Number, st.Text))
	}
	sb.WriteString("\n## Configuration\n\n")
	for _, st := range g.Configuration {
		sb.WriteString(fmt.Sprintf("%d. %s\n", st.Number, st.Text))
	}
	return sb.String()
}
