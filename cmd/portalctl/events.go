package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/piresc/guestportal/internal/pkg/constants"
	natspkg "github.com/piresc/guestportal/internal/pkg/nats"
	"github.com/piresc/guestportal/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newEventsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Sign test events and follow the event stream",
	}

	sign := &cobra.Command{
		Use:   "sign [file]",
		Short: "Print the X-Portal-Signature value for a body (stdin when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := v.GetString("secret")
			if secret == "" {
				return fmt.Errorf("--secret is required")
			}
			var (
				body []byte
				err  error
			)
			if len(args) == 1 {
				body, err = os.ReadFile(args[0])
			} else {
				body, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), utils.SignPayload(secret, body))
			return nil
		},
	}
	sign.Flags().String("secret", "", "tenant secret")

	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print events published on NATS",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := natspkg.NewClient(v.GetString("nats-url"))
			if err != nil {
				return err
			}
			defer client.Close()

			msgs := make(chan *nats.Msg, 64)
			subject := constants.SubjectEvents + ".>"
			if prefix := v.GetString("prefix"); prefix != "" {
				subject = prefix + "." + subject
			}
			sub, err := client.Subscribe(subject, func(msg *nats.Msg) { msgs <- msg })
			if err != nil {
				return err
			}
			defer sub.Unsubscribe()

			limit := v.GetInt("max")
			for seen := 0; limit <= 0 || seen < limit; seen++ {
				select {
				case <-cmd.Context().Done():
					return nil
				case msg := <-msgs:
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", msg.Subject, msg.Data)
				}
			}
			return nil
		},
	}
	tail.Flags().String("nats-url", nats.DefaultURL, "NATS server URL")
	tail.Flags().String("prefix", "portal", "subject prefix the portal publishes under")
	tail.Flags().Int("max", 0, "exit after this many events (0 runs until interrupted)")

	cmd.AddCommand(sign, tail)
	return cmd
}
