// Package constants provides shared constants for the roi-proposal application.
package constants

// Financial constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultTimeframeMonths is the default ROI timeframe
	DefaultTimeframeMonths = 12
)

// Output format constants
const (
	// OutputFormatText is the human-readable proposal document output
	OutputFormatText = "text"

	// OutputFormatSummary is the plain-text email summary output
	OutputFormatSummary = "summary"

	// OutputFormatScript is the screen-share talking-points output
	OutputFormatScript = "script"

	// OutputFormatPDF is the PDF export output
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultStoreFile is the default durable snapshot file name
	DefaultStoreFile = "proposal-form.json"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web editor
	DefaultServerAddress = ":8080"
)

// Logo lookup service defaults
const (
	// DefaultLogoHost is the default domain-to-logo image lookup host
	DefaultLogoHost = "img.logo.dev"

	// DefaultLogoSize is the pixel size requested from the logo lookup service
	DefaultLogoSize = 200

	// DefaultQuietPeriodMs is the debounce quiet period for the logo lookup,
	// in milliseconds, measured from the last edit to the website field
	DefaultQuietPeriodMs = 1500

	// MinimumDomainLength is the shortest domain the logo policy will look up
	MinimumDomainLength = 4
)

// Presentation placeholders for a not-yet-computed or not-applicable value
const (
	// PlaceholderNotApplicable is used in the rendered proposal document
	PlaceholderNotApplicable = "N/A"

	// PlaceholderPending is used in the screen-share script
	PlaceholderPending = "..."
)
