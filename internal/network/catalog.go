// Package network loads the read-only catalog of named RPC profiles. The
// endpoints are metadata stamped onto payload records; nothing here dials
// them.
package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

var (
	// ErrConfigLoad wraps failures to read or decode the catalog file.
	ErrConfigLoad = errors.New("network catalog load failed")
	// ErrUnknownNetwork reports a lookup for a profile that is not configured.
	ErrUnknownNetwork = errors.New("unknown network profile")
)

// Profile is a named pair of RPC and explorer endpoints.
type Profile struct {
	Name        string `json:"-"`
	RPC         string `json:"rpc"`
	Explorer    string `json:"explorer"`
	Description string `json:"description,omitempty"`
}

// Catalog is an immutable name-to-profile mapping.
type Catalog struct {
	profiles map[string]Profile
}

type catalogFile struct {
	RPCProfiles map[string]Profile `json:"rpc_profiles"`
}

// Load reads the JSON catalog at path. A missing or malformed file wraps
// ErrConfigLoad.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfigLoad, path, err)
	}
	var raw catalogFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrConfigLoad, path, err)
	}
	profiles := make(map[string]Profile, len(raw.RPCProfiles))
	for name, profile := range raw.RPCProfiles {
		profile.Name = name
		profiles[name] = profile
	}
	return &Catalog{profiles: profiles}, nil
}

// Lookup returns the named profile or ErrUnknownNetwork.
func (c *Catalog) Lookup(name string) (Profile, error) {
	profile, ok := c.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return profile, nil
}

// Names returns the configured profile names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns every profile sorted by name.
func (c *Catalog) Profiles() []Profile {
	profiles := make([]Profile, 0, len(c.profiles))
	for _, name := range c.Names() {
		profiles = append(profiles, c.profiles[name])
	}
	return profiles
}
