package users

import (
	"sort"
	"time"

	"github.com/markbates/goth"
)

// AccountView feeds the account management screen.
type AccountView struct {
	Email     string              `json:"email"`
	Providers []LoginProviderView `json:"providers"`
	TwoFactor TwoFactorView       `json:"two_factor"`
}

// LoginProviderView describes one external login option and whether
// the account is linked to it.
type LoginProviderView struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
	Linked   bool   `json:"linked"`
}

type TwoFactorView struct {
	Enabled       bool       `json:"enabled"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	RecoveryCodes int        `json:"recovery_codes"`
}

var providerNames = map[string]string{
	"facebook": "Facebook",
	"gplus":    "Google",
}

// Account projects the user document against the registered oauth
// providers into the view the account screen consumes.
func Account(u User) AccountView {
	registered := goth.GetProviders()
	providers := make([]LoginProviderView, 0, len(registered))

	for name := range registered {
		display, ok := providerNames[name]
		if !ok {
			display = name
		}

		providers = append(providers, LoginProviderView{
			Provider: name,
			Name:     display,
			Linked:   u.linked(name),
		})
	}

	// Registry iteration order is random.
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Provider < providers[j].Provider
	})

	return AccountView{
		Email:     u.Email,
		Providers: providers,
		TwoFactor: TwoFactorView{
			Enabled:       u.TwoFactor.Enabled,
			ConfirmedAt:   u.TwoFactor.ConfirmedAt,
			RecoveryCodes: u.TwoFactor.RecoveryCodes,
		},
	}
}

func (u User) linked(provider string) bool {
	switch provider {
	case "facebook":
		return len(u.Facebook) > 0
	case "gplus":
		return len(u.Google) > 0
	}

	return false
}
