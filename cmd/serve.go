package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hungryops/lunchpick/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lunchpick HTTP API",
	Long: `Start a small JSON API over the shared catalog so the whole team can
add candidates and trigger picks from one place. With serve.username and
serve.password set (or the matching flags), endpoints require basic auth.

The server holds the state-file lock for as long as it runs: lunchpick
commands in other terminals will wait until it is stopped. Use the API for
changes while the server is up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		listen := viper.GetString("serve.listen")
		if cmd.Flags().Changed("listen") {
			listen, _ = cmd.Flags().GetString("listen")
		}
		user := viper.GetString("serve.username")
		if cmd.Flags().Changed("user") {
			user, _ = cmd.Flags().GetString("user")
		}
		pass := viper.GetString("serve.password")
		if cmd.Flags().Changed("pass") {
			pass, _ = cmd.Flags().GetString("pass")
		}

		sess, closer, err := openSession(context.Background())
		if err != nil {
			return err
		}
		defer closer()

		return server.New(sess, user, pass).Start(listen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().String("user", "", "Basic auth username (empty disables auth)")
	serveCmd.Flags().String("pass", "", "Basic auth password")
}
