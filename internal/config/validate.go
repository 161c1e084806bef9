package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Validate checks a config without mutating it.
func Validate(cfg Config) Validation {
	var res Validation

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if cfg.Scrape.SourceTimeoutSeconds <= 0 {
		res.addErr("scrape.source_timeout_seconds must be > 0")
	} else if cfg.Scrape.SourceTimeoutSeconds < 5 {
		res.addWarn("scrape.source_timeout_seconds is very low (%d); slow boards will always time out.", cfg.Scrape.SourceTimeoutSeconds)
	}
	if cfg.Scrape.HostReqPerSec <= 0 {
		res.addErr("scrape.host_req_per_sec must be > 0")
	}
	if cfg.Scrape.HostBurst <= 0 {
		res.addErr("scrape.host_burst must be > 0")
	}

	checkURL := func(name, raw string) {
		if strings.TrimSpace(raw) == "" {
			return // empty means built-in default
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("sources.%s.url is not an absolute URL: %q", name, raw)
		}
	}
	checkURL("arbeitnow", cfg.Sources.Arbeitnow.URL)
	checkURL("manfred", cfg.Sources.Manfred.URL)
	checkURL("berlin-startup-jobs", cfg.Sources.BerlinStartup.URL)
	checkURL("job4good", cfg.Sources.Job4Good.URL)
	checkURL("turijobs", cfg.Sources.Turijobs.URL)

	if cfg.Sources.Arbeitnow.Pages < 0 {
		res.addErr("sources.arbeitnow.pages must be >= 0")
	} else if cfg.Sources.Arbeitnow.Pages > 20 {
		res.addWarn("sources.arbeitnow.pages is high (%d); each page is one more request per call.", cfg.Sources.Arbeitnow.Pages)
	}

	return res
}
