package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ModerationPolicy lists the domains and thresholds used by signup checks and fake-account cleanup.
type ModerationPolicy struct {
	FreeMailDomains   []string `yaml:"free_mail_domains"`
	DisposableDomains []string `yaml:"disposable_domains"`
	MinDigitRun       int      `yaml:"min_digit_run"`
}

// DefaultModerationPolicy is used when no policy file is configured.
func DefaultModerationPolicy() ModerationPolicy {
	return ModerationPolicy{
		FreeMailDomains: []string{
			"gmail.com", "googlemail.com", "yahoo.com", "hotmail.com", "outlook.com",
			"live.com", "icloud.com", "aol.com", "proton.me", "protonmail.com", "gmx.com",
		},
		DisposableDomains: []string{
			"mailinator.com", "tempmail.com", "10minutemail.com", "guerrillamail.com",
			"yopmail.com", "trashmail.com", "sharklasers.com", "getnada.com",
			"dispostable.com", "throwawaymail.com", "fakeinbox.com", "temp-mail.org",
		},
		MinDigitRun: 5,
	}
}

var readPolicyFile = os.ReadFile

// LoadModerationPolicy reads a YAML policy file. An empty path yields the defaults;
// lists or thresholds omitted from the file keep their default values.
func LoadModerationPolicy(path string) (ModerationPolicy, error) {
	policy := DefaultModerationPolicy()
	if strings.TrimSpace(path) == "" {
		return policy, nil
	}

	b, err := readPolicyFile(path)
	if err != nil {
		return policy, fmt.Errorf("read moderation policy: %w", err)
	}

	var file ModerationPolicy
	if err := yaml.Unmarshal(b, &file); err != nil {
		return policy, fmt.Errorf("parse moderation policy: %w", err)
	}

	if len(file.FreeMailDomains) > 0 {
		policy.FreeMailDomains = file.FreeMailDomains
	}
	if len(file.DisposableDomains) > 0 {
		policy.DisposableDomains = file.DisposableDomains
	}
	if file.MinDigitRun > 0 {
		policy.MinDigitRun = file.MinDigitRun
	}
	policy.FreeMailDomains = normalizeDomains(policy.FreeMailDomains)
	policy.DisposableDomains = normalizeDomains(policy.DisposableDomains)
	return policy, nil
}

func normalizeDomains(in []string) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		d = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(d), "@")))
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
