package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults are the job parameters used when a submission omits them.
type Defaults struct {
	Walltime string `yaml:"walltime"`
	Nodes    int    `yaml:"nodes"`
	Command  string `yaml:"command"`
}

// Config holds the remote host identifier and the operation defaults.
// It is constructed once in main and passed by value; nothing mutates it
// after startup.
type Config struct {
	Host     string   `yaml:"host"`
	Defaults Defaults `yaml:"defaults"`
}

func Default() Config {
	return Config{
		Host: "cluster",
		Defaults: Defaults{
			Walltime: "1:00:00",
			Nodes:    1,
			Command:  "sleep 365d",
		},
	}
}

// Load reads the optional yaml file named by CONFIG_PATH on top of the
// built-in defaults, then applies the CLUSTER_HOSTNAME override.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cb, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(cb, &cfg); err != nil {
			return cfg, err
		}
	}

	if host := os.Getenv("CLUSTER_HOSTNAME"); host != "" {
		cfg.Host = host
	}

	return cfg, nil
}

// Describe renders the read-only configuration descriptor exposed on /config.
func (c Config) Describe() string {
	return fmt.Sprintf(`OAR Cluster Configuration:
- Cluster Hostname: %s
- Default Walltime: %s
- Default Nodes: %d
- Default Command: %s

Available OAR Commands:
- List machines: oarnodes -l
- List jobs: oarstat
- Create job: oarsub -l <resources> <command>
- Delete job: oardel <jobid>
- Extend walltime: oarwalltime <jobid> +<time>
`, c.Host, c.Defaults.Walltime, c.Defaults.Nodes, c.Defaults.Command)
}
