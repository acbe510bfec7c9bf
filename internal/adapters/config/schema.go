package config

// Relockfile represents the structure of the relock.yaml configuration file.
type Relockfile struct {
	Version   string       `yaml:"version"`
	Project   string       `yaml:"project"`
	DevSpec   string       `yaml:"dev_spec"`
	OutputDir string       `yaml:"output_dir"`
	StateFile string       `yaml:"state_file"`
	Resolver  ResolverDTO  `yaml:"resolver"`
	Platforms []string     `yaml:"platforms"`
}

// ResolverDTO represents the resolver section of the configuration.
type ResolverDTO struct {
	Command     []string          `yaml:"command"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	UpgradeFlag string            `yaml:"upgrade_flag"`
}
