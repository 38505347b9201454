package diagram

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// TemplateName identifies a kill chain template.
type TemplateName string

const (
	TemplatePhishing     TemplateName = "phishing"
	TemplateWebApp       TemplateName = "webapp"
	TemplateWireless     TemplateName = "wireless"
	TemplateStolenDevice TemplateName = "stolen_device"
	TemplateNetwork      TemplateName = "network"
	TemplateGeneric      TemplateName = "generic"
)

// Template is a kill chain layout: ordered phases plus an optional stock image.
type Template struct {
	Name     TemplateName
	Trigger  string // tag name that selects this template; empty for the fallback
	Phases   []string
	ImageURL string
}

var genericPhases = []string{
	"Reconnaissance", "Initial Access", "Execution", "Persistence",
	"Privilege Escalation", "Defense Evasion", "Discovery",
	"Lateral Movement", "Collection", "Exfiltration",
}

// registry is ordered: Detect picks the first template whose trigger matches.
var registry = []Template{
	{
		Name:    TemplatePhishing,
		Trigger: "Phishing",
		Phases: []string{
			"Reconnaissance", "Email Spear Phishing", "Credential Harvesting",
			"Initial Access", "Privilege Escalation", "Lateral Movement", "Data Exfiltration",
		},
		ImageURL: "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7?w=800&h=600&fit=crop",
	},
	{
		Name:    TemplateWebApp,
		Trigger: "Web App",
		Phases: []string{
			"Target Identification", "Vulnerability Scanning", "SQL Injection",
			"Database Access", "Data Extraction", "Persistence", "Covering Tracks",
		},
		ImageURL: "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&h=600&fit=crop",
	},
	{
		Name:    TemplateWireless,
		Trigger: "Wireless",
		Phases: []string{
			"Network Discovery", "Wireless Assessment", "Access Point Compromise",
			"Network Infiltration", "SCADA Access", "System Control", "Impact Assessment",
		},
		ImageURL: "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=800&h=600&fit=crop",
	},
	{
		Name:    TemplateStolenDevice,
		Trigger: "Stolen Device",
		Phases: []string{
			"Physical Theft", "Credential Extraction", "VPN Access",
			"Network Reconnaissance", "Database Access", "Data Harvesting", "Account Persistence",
		},
	},
	{
		Name:     TemplateNetwork,
		Trigger:  "Internal Pentest",
		Phases:   genericPhases,
		ImageURL: "https://images.unsplash.com/photo-1470813740244-df37b8c1edcb?w=800&h=600&fit=crop",
	},
	{
		Name:     TemplateGeneric,
		Phases:   genericPhases,
		ImageURL: "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&h=600&fit=crop",
	},
}

// Templates returns every registered template in detection order.
func Templates() []Template {
	return slices.Clone(registry)
}

// Lookup returns the template with the given name.
func Lookup(name string) (Template, error) {
	for _, t := range registry {
		if string(t.Name) == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("diagram template %q: %w", name, domain.ErrNotFound)
}

// Detect returns the first template whose trigger is among the tag names,
// or the generic template.
func Detect(tags []domain.Tag) Template {
	for _, t := range registry {
		if t.Trigger == "" {
			continue
		}
		for _, tag := range tags {
			if tag.Name == t.Trigger {
				return t
			}
		}
	}
	return registry[len(registry)-1]
}
