package populate

// Config contains configuration options that control
// which folders the populator scans.
type Config struct {
	// The directory whose immediate sub-directories are populated. Each
	// sub-directory name is used verbatim as a search query.
	RootPath string `yaml:"root" env:"MEDIACONF_ROOT" env-default:"." validate:"required"`
}
