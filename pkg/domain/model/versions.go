package model

// Version cache keys
const (
	VersionMetamod       = "metamod"
	VersionCS2KZ         = "cs2kz"
	VersionMappingAPI    = "mapping_api"
	VersionSource2Viewer = "source2viewer"
)

// UnknownVersion is stored when a component was installed while its remote
// version could not be determined
const UnknownVersion = "unknown"

// Versions maps a component key to its last installed version string
type Versions map[string]string
