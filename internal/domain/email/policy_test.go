package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccepts_AllowedDomains(t *testing.T) {
	p := NewPolicy(nil)

	for _, addr := range []string{
		"user@gmail.com",
		"user@protonmail.com",
		"user@proton.me",
		"user@yahoo.com",
		"user@hotmail.com",
		"user@outlook.com",
	} {
		assert.True(t, p.Accepts(addr), addr)
	}
}

func TestAccepts_DomainCaseInsensitive(t *testing.T) {
	p := NewPolicy(nil)

	assert.True(t, p.Accepts("user@Gmail.Com"))
	assert.True(t, p.Accepts("user@OUTLOOK.COM"))
}

func TestAccepts_RejectsOtherDomains(t *testing.T) {
	p := NewPolicy(nil)

	for _, addr := range []string{
		"user@badmail.com",
		"user@gmail.com.evil.org",
		"user@corp.example",
	} {
		assert.False(t, p.Accepts(addr), addr)
	}
}

func TestAccepts_RejectsMalformed(t *testing.T) {
	p := NewPolicy(nil)

	for _, addr := range []string{
		"",
		"usergmail.com",
		"@gmail.com",
		"user@",
		"user@localhost",
		"user name@gmail.com",
		"user@gmail.com ",
		"user@\tgmail.com",
	} {
		assert.False(t, p.Accepts(addr), "%q", addr)
	}
}

func TestAccepts_LastAtWins(t *testing.T) {
	p := NewPolicy(nil)

	// The domain is whatever follows the last "@".
	assert.True(t, p.Accepts(`"weird@local"@gmail.com`))
	assert.False(t, p.Accepts("user@gmail.com@badmail.com"))
}

func TestNewPolicy_CustomDomains(t *testing.T) {
	p := NewPolicy([]string{"Example.ORG"})

	assert.True(t, p.Accepts("a@example.org"))
	assert.False(t, p.Accepts("a@gmail.com"))
	assert.Equal(t, []string{"example.org"}, p.Domains())
}
