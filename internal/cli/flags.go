package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput    = "output"
	FlagOverwrite = "overwrite"
	FlagConfig    = "config"
	FlagTemplate  = "template"
	FlagYes       = "yes"
	FlagModel     = "model"
	FlagNoColor   = "no-color"
	FlagQuiet     = "quiet"
	FlagDebug     = "debug"
	FlagForce     = "force"

	// Flag descriptions
	DescOutput    = "Output directory"
	DescOverwrite = "Overwrite existing files"
	DescConfig    = "Path to config file"
	DescTemplate  = "Prompt template file"
	DescYes       = "Skip selection, take the whole plan"
	DescModel     = "Override the configured model"
	DescNoColor   = "Disable colored output"
	DescQuiet     = "Suppress non-error output"
	DescDebug     = "Enable debug logging"
	DescForce     = "Force overwrite"
)
