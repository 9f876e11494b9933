package config

// WithDefaults returns a deep copy of the configuration with documented
// defaults filled in. The receiver is not modified, and applying defaults
// twice yields the same result as applying them once.
//
// Defaults: cp_availability_policy and infra_availability_policy fall back
// to HighlyAvailable. An absent storage_quota stays nil, which means
// unlimited.
func (c *Config) WithDefaults() *Config {
	out := c.DeepCopy()

	for name, hc := range out.EnvData.Clusters {
		if hc.CPAvailabilityPolicy == "" {
			hc.CPAvailabilityPolicy = HighlyAvailable
		}
		if hc.InfraAvailabilityPolicy == "" {
			hc.InfraAvailabilityPolicy = HighlyAvailable
		}
		out.EnvData.Clusters[name] = hc
	}

	return out
}

// DeepCopy returns an independent copy of the configuration with no shared
// mutable state.
func (c *Config) DeepCopy() *Config {
	out := *c

	if c.EnvData.Clusters != nil {
		out.EnvData.Clusters = make(map[string]HostedCluster, len(c.EnvData.Clusters))
		for name, hc := range c.EnvData.Clusters {
			if hc.StorageQuota != nil {
				quota := *hc.StorageQuota
				hc.StorageQuota = &quota
			}
			out.EnvData.Clusters[name] = hc
		}
	}

	return &out
}
