package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Profile is one named backend configuration from the user's config file.
type Profile struct {
	Name         string
	ReportURL    string
	AuthURL      string
	ArtifactsDir string
	TokenFile    string
}

// Registry exposes the profiles of a data-lens config file. The file is ini
// formatted, one section per profile:
//
//	[default]
//	report_url = https://quality.example.com
//	auth_url = https://quality.example.com
//	artifacts_dir = ./artifacts
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section := cr.cfg.Section(name)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := &Profile{
		Name:         name,
		ReportURL:    section.Key("report_url").String(),
		AuthURL:      section.Key("auth_url").String(),
		ArtifactsDir: section.Key("artifacts_dir").String(),
		TokenFile:    section.Key("token_file").String(),
	}
	if profile.ReportURL == "" {
		return nil, fmt.Errorf("profile %s has no report_url", name)
	}
	if profile.AuthURL == "" {
		profile.AuthURL = profile.ReportURL
	}
	if profile.ArtifactsDir == "" {
		profile.ArtifactsDir = "."
	}
	if profile.TokenFile == "" {
		profile.TokenFile = defaultTokenFile(name)
	}
	return profile, nil
}

func defaultTokenFile(profile string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".data-lens", profile+".token")
}

// DefaultConfigPath is where the CLI looks for profiles unless told otherwise.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".data-lens", "config")
}
