package main

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/gplus"
	"github.com/mirador-app/mirador/board/sitemap"
	"github.com/mirador-app/mirador/board/users"
	"github.com/mirador-app/mirador/core/config"
	"github.com/mirador-app/mirador/deps"
	"github.com/mirador-app/mirador/modules/api"
	"github.com/spf13/cobra"
	"gopkg.in/mgo.v2/bson"
)

func main() {
	deps.Bootstrap()
	config.Bootstrap()

	igniteProviders()

	var cmdWeb = &cobra.Command{
		Use:   "web",
		Short: "Starts the web server",
		Long: `Starts the web server listening
        in the specified env port
        `,
		Run: func(cmd *cobra.Command, args []string) {
			port := ":3200"
			if len(args) == 1 {
				port = args[0]
			}

			server := api.Module{Sitemap: igniteAssembler()}
			server.Run(port)
		},
	}

	var cmdWarm = &cobra.Command{
		Use:   "sitemap-warm",
		Short: "Precomputes sitemap documents",
		Long: `Builds the sitemap documents and leaves
        them in the shared cache
        `,
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := igniteAssembler().Root(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	var cmdToken = &cobra.Command{
		Use:   "token [user-id]",
		Short: "Signs a bearer token for a user",
		Long: `Signs a bearer token for the given user id,
        handy to poke authorized endpoints
        `,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 || !bson.IsObjectIdHex(args[0]) {
				fmt.Fprintln(os.Stderr, "usage: mirador token <user-id>")
				os.Exit(1)
			}

			usr, err := users.FindId(deps.Container, bson.ObjectIdHex(args[0]))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			secret, err := deps.Container.Config().String("application.secret")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			signed, err := users.SignToken(usr.Id, secret, 72)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			fmt.Println(signed)
		},
	}

	var rootCmd = &cobra.Command{Use: "mirador"}
	rootCmd.AddCommand(cmdWeb)
	rootCmd.AddCommand(cmdWarm)
	rootCmd.AddCommand(cmdToken)
	rootCmd.Execute()
}

// Registers the oauth providers found in the env config.
func igniteProviders() {
	cnf := deps.Container.Config()

	if key, err := cnf.String("auth.facebook.key"); err == nil {
		secret := cnf.UString("auth.facebook.secret", "")
		callback := cnf.UString("auth.facebook.callback", "")
		goth.UseProviders(facebook.New(key, secret, callback, "email"))
	}

	if key, err := cnf.String("auth.gplus.key"); err == nil {
		secret := cnf.UString("auth.gplus.secret", "")
		callback := cnf.UString("auth.gplus.callback", "")
		goth.UseProviders(gplus.New(key, secret, callback, "email"))
	}
}

func igniteAssembler() *sitemap.Assembler {
	params := config.C.Params()

	ttl := time.Duration(params.Sitemap.CacheTTL) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}

	cache := sitemap.RedisCache{
		Redis: deps.Container.Cache(),
		TTL:   ttl,
		Log:   deps.Container.Log(),
	}

	extra := make([]sitemap.Route, 0, len(params.Sitemap.Routes))
	for _, route := range params.Sitemap.Routes {
		extra = append(extra, sitemap.Route{
			Path:       route.Path,
			Priority:   route.Priority,
			ChangeFreq: sitemap.ChangeFreq(route.ChangeFreq),
		})
	}

	return sitemap.NewAssembler(
		cache,
		siteResolver(params.Site.Url),
		deps.Container.Log(),
		params.Site.Url,
		extra,
	)
}

// siteResolver resolves application routes against the configured
// site url.
func siteResolver(siteUrl string) sitemap.Resolver {
	base, baseErr := url.Parse(siteUrl)

	return func(route string) (string, error) {
		if baseErr != nil {
			return "", baseErr
		}

		ref, err := url.Parse(route)
		if err != nil {
			return "", err
		}

		return base.ResolveReference(ref).String(), nil
	}
}
