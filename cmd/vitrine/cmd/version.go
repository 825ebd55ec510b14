package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Print version information",
		Long:  `Print the CLI version and build time.`,
		Usage: "vitrine version",
		Run: func(args []string) error {
			fmt.Printf("Vitrine CLI version %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
