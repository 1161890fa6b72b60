package config

import (
	"fmt"
	"net/url"
	"strings"
)

// formHosts maps API hosts to the public submission site serving that
// environment. It is a fixed table, not a configurable mechanism: the
// public site is deployed per environment and its address changes as
// rarely as this code does.
var formHosts = map[string]string{
	"127.0.0.1":            "http://127.0.0.1:3000",
	"localhost":            "http://localhost:3000",
	"api.lostlink.com":     "https://lostlink.com",
	"staging.lostlink.com": "https://staging-app.lostlink.com",
}

const defaultFormHost = "https://lostlink.com"

// PublicFormLink builds the public submission link for a reporting
// location, selecting the site by the configured backend host. The slug
// rides along as a ref parameter so submissions attribute to the location
// whose QR code was scanned.
func (c *Config) PublicFormLink(slug string) string {
	base := defaultFormHost
	if u, err := url.Parse(c.BaseURL); err == nil {
		if site, ok := formHosts[u.Hostname()]; ok {
			base = site
		}
	}
	base = strings.TrimRight(base, "/")
	if slug == "" {
		return base + "/"
	}
	return fmt.Sprintf("%s/?ref=%s", base, url.QueryEscape(slug))
}
