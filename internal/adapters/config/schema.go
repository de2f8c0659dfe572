package config

// Vouchfile represents the structure of the vouch.yaml configuration file.
type Vouchfile struct {
	Version     string   `yaml:"version"`
	CacheDir    string   `yaml:"cacheDir"`
	Parallelism int      `yaml:"parallelism"`
	Env         []string `yaml:"env"`
}
