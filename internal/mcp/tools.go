package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listFAQsTool defines the list_faqs MCP tool.
var listFAQsTool = mcp.NewTool("list_faqs",
	mcp.WithDescription("List every frequently asked question with its answer, in display order."),
)

// getFAQTool defines the get_faq MCP tool.
var getFAQTool = mcp.NewTool("get_faq",
	mcp.WithDescription("Get a single FAQ entry by its id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Entry id, \"1\" through \"8\""),
	),
)

// getInstallInstructionsTool defines the get_install_instructions MCP tool.
var getInstallInstructionsTool = mcp.NewTool("get_install_instructions",
	mcp.WithDescription("Get the steps for installing and configuring the Signify browser extension."),
)

// getDownloadURLTool defines the get_download_url MCP tool.
var getDownloadURLTool = mcp.NewTool("get_download_url",
	mcp.WithDescription("Get the direct download URL and file name of the Signify extension archive."),
)

// downloadStatsTool defines the download_stats MCP tool.
var downloadStatsTool = mcp.NewTool("download_stats",
	mcp.WithDescription("Summarize recorded extension download attempts per strategy and outcome."),
)
