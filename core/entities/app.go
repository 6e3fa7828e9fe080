package entities

// App is a pre-packaged workload that can be started inside an apps filesystem. Apps are
// described by the catalog and are never mutated once loaded.
type App struct {
	Name               string `json:"name"`
	Category           string `json:"category"`
	FilesystemRequired string `json:"filesystem_required"`
	SupportsCLI        bool   `json:"supports_cli"`
	SupportsGUI        bool   `json:"supports_gui"`
	IsPaidApp          bool   `json:"is_paid_app"`
	Version            int64  `json:"version"`
}
