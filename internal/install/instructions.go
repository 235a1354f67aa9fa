package install

// VendorURL is the value users paste into the extension's "Vendor Url" field.
const VendorURL = "https://api.npoint.io/53b6f17fceb96be39865"

// Step is one numbered instruction. Text is markdown.
type Step struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Guide groups the installation and configuration steps shown in the panel.
type Guide struct {
	Title         string `json:"title"`
	Install       []Step `json:"install"`
	Configuration []Step `json:"configuration"`
	VendorURL     string `json:"vendor_url"`
}

// Instructions returns the fixed guide for installing the extension in Chrome.
func Instructions() Guide {
	return Guide{
		Title: "Installation Instructions (for Google Chrome)",
		Install: numbered(
			"After downloading and unzipping, open Chrome and navigate to `chrome://extensions`.",
			`Enable "Developer mode" using the toggle in the top-right corner.`,
			`Click the "Load unpacked" button that appears on the left.`,
			"Select the browser-extension folder you just downloaded.",
		),
		Configuration: numbered(
			"Once installed, click on the extension's icon in your browser toolbar to open it.",
			"Click the settings icon.",
			`In the "Vendor Url" field, paste the following URL: `+"`"+VendorURL+"`",
			`Click "Load and Save".`,
		),
		VendorURL: VendorURL,
	}
}

func numbered(texts ...string) []Step {
	steps := make([]Step, len(texts))
	for i, t := range texts {
		steps[i] = Step{Number: i + 1, Text: t}
	}
	return steps
}
