package config

// PasswordChecker is the password_checker section of the configuration file.
// Pointer fields distinguish "not set" from the zero value.
type PasswordChecker struct {
	// BlacklistCheck enables the blacklist lookup.
	BlacklistCheck *bool `yaml:"blacklist_check,omitempty"`

	// BlacklistFile is the list file, relative to BlacklistDir unless absolute.
	BlacklistFile string `yaml:"blacklist_file,omitempty"`

	// BlacklistDir is the base directory for relative list file names.
	BlacklistDir string `yaml:"blacklist_dir,omitempty"`

	// BlacklistBackend is file, memory or index.
	BlacklistBackend string `yaml:"blacklist_backend,omitempty"`

	// IndexDir is the directory of the SQLite blacklist index.
	IndexDir string `yaml:"index_dir,omitempty"`

	// Charset is ascii or unicode.
	Charset string `yaml:"charset,omitempty"`

	// Estimate enables crack-time estimation.
	Estimate *bool `yaml:"estimate,omitempty"`

	// MaxEstimateLength is the number of runes given to the estimator.
	MaxEstimateLength int `yaml:"max_estimate_length,omitempty"`

	// UserInputs are personal words that weaken a password.
	UserInputs []string `yaml:"user_inputs,omitempty"`

	// Color is auto, always or never.
	Color string `yaml:"color,omitempty"`

	// BatchSize is the number of passwords evaluated concurrently.
	BatchSize int `yaml:"batch_size,omitempty"`
}

// File represents the structure of the .passcheck.yaml configuration file.
type File struct {
	PasswordChecker PasswordChecker `yaml:"password_checker"`
}

// Apply copies every value set in the file onto cfg.
func (f *File) Apply(cfg *Config) {
	pc := f.PasswordChecker

	if pc.BlacklistCheck != nil {
		cfg.BlacklistCheck = *pc.BlacklistCheck
	}
	if pc.BlacklistFile != "" {
		cfg.BlacklistFile = pc.BlacklistFile
	}
	if pc.BlacklistDir != "" {
		cfg.BlacklistDir = pc.BlacklistDir
	}
	if pc.BlacklistBackend != "" {
		cfg.BlacklistBackend = pc.BlacklistBackend
	}
	if pc.IndexDir != "" {
		cfg.IndexDir = pc.IndexDir
	}
	if pc.Charset != "" {
		cfg.Charset = pc.Charset
	}
	if pc.Estimate != nil {
		cfg.Estimate = *pc.Estimate
	}
	if pc.MaxEstimateLength != 0 {
		cfg.MaxEstimateLength = pc.MaxEstimateLength
	}
	if len(pc.UserInputs) > 0 {
		cfg.UserInputs = append([]string(nil), pc.UserInputs...)
	}
	if pc.Color != "" {
		cfg.Color = pc.Color
	}
	if pc.BatchSize != 0 {
		cfg.BatchSize = pc.BatchSize
	}
}
