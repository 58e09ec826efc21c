// Package email enforces the provider allow-list for customer addresses.
// Orders are fulfilled manually over email, so only a fixed set of reachable
// mailbox providers is accepted.
package email

import "strings"

// DefaultAllowedDomains is the stock provider allow-list. Deployments override
// it through configuration.
var DefaultAllowedDomains = []string{
	"gmail.com",
	"protonmail.com",
	"proton.me",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
}

// Policy decides whether a customer email address is acceptable.
type Policy struct {
	allowed map[string]struct{}
	domains []string
}

// NewPolicy creates a Policy accepting the given domains (compared
// case-insensitively). An empty list falls back to DefaultAllowedDomains.
func NewPolicy(domains []string) *Policy {
	if len(domains) == 0 {
		domains = DefaultAllowedDomains
	}
	allowed := make(map[string]struct{}, len(domains))
	normalized := make([]string, len(domains))
	for i, d := range domains {
		d = strings.ToLower(d)
		allowed[d] = struct{}{}
		normalized[i] = d
	}
	return &Policy{allowed: allowed, domains: normalized}
}

// Accepts reports whether the address passes basic syntax checks and its
// domain (the part after the last "@", lower-cased) is on the allow-list.
func (p *Policy) Accepts(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	if !strings.Contains(domain, ".") {
		return false
	}
	_, ok := p.allowed[domain]
	return ok
}

// Domains returns the accepted provider domains, for user-facing error
// messages.
func (p *Policy) Domains() []string {
	return p.domains
}
