package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/nordmenu/internal/cache"
	"github.com/rshade/nordmenu/internal/catalog"
	"github.com/rshade/nordmenu/internal/config"
	"github.com/rshade/nordmenu/internal/nordvpn"
	"github.com/rshade/nordmenu/internal/notify"
)

// deps bundles the collaborators every command operates on: the client
// around the external binary, the cached catalog over it, and the
// desktop notifier.
type deps struct {
	client   *nordvpn.Client
	runner   *nordvpn.ExecRunner
	catalog  *catalog.Service
	notifier *notify.Notifier
}

// newDeps wires the command's collaborators from configuration and
// flags. Each invocation gets its own cache store; nothing is shared
// across commands.
func newDeps(cmd *cobra.Command) *deps {
	runner := nordvpn.NewExecRunnerWith(config.GetVPNBinary(), config.GetVPNTimeout())
	client := nordvpn.NewClient(runner)
	store := cache.NewStore(resolveCacheTTL(cmd))

	notifyEnabled := config.NotificationsEnabled()
	if noNotify, _ := cmd.Flags().GetBool("no-notify"); noNotify {
		notifyEnabled = false
	}

	return &deps{
		client:   client,
		runner:   runner,
		catalog:  catalog.NewService(client, store),
		notifier: notify.New(notifyEnabled),
	}
}

// remediated appends the remediation hint for known failures so command
// errors tell the user what to do next.
func remediated(err error) error {
	if hint := nordvpn.Remediation(err); hint != "" {
		return fmt.Errorf("%w\n%s", err, hint)
	}
	return err
}

// resolveCacheTTL applies the TTL precedence: --cache-ttl flag, then
// the environment variable, then the config file, then the default.
func resolveCacheTTL(cmd *cobra.Command) int {
	if cmd.Flags().Changed("cache-ttl") {
		if ttl, _ := cmd.Flags().GetInt("cache-ttl"); ttl > 0 {
			return ttl
		}
	}
	if os.Getenv(cache.EnvTTLSeconds) != "" {
		return cache.GetTTLFromEnv()
	}
	return config.GetCacheTTLSeconds()
}
