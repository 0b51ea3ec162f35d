package types

// Version is overwritten at build time with -ldflags "-X ...types.Version=..."
var Version = "dev"

const (
	// AppName is used for the binary name and the service field of health responses
	AppName = "cs2kz"

	// DataDirName is the folder created under the OS temp dir for settings, caches and downloaded tools
	DataDirName = ".CS2KZ-mapping-tools"

	// CS2AppID is the Steam application ID of Counter-Strike 2
	CS2AppID = "730"
)
