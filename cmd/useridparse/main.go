// Command useridparse parses an RFC 2822 name-addr / addr-spec User ID
// string and prints the Component sequence it decomposes into.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pgpmail/useridaddr"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "useridparse <user-id>",
	Short: "parse an RFC 2822 User ID string into its components",
	Long: `useridparse parses a User ID string of the kind found in OpenPGP key material
-- an angle-addr, optionally preceded by a display name -- and prints the sequence of
Text, WS, Comment, Address, and InvalidAddress components it decomposes
into.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	asJSON bool
	lax    bool
)

func init() {
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the component sequence as JSON")
	rootCmd.Flags().BoolVar(&lax, "lax", true, "recover non-email content inside <...> as InvalidAddress instead of failing")
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]

	var (
		seq []useridaddr.Component
		err error
	)
	if lax {
		seq, err = useridaddr.ParseNameAddrOrOther(input)
	} else {
		seq, err = useridaddr.ParseNameAddr(input)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(cmd, seq)
	}
	printHuman(cmd, seq)
	return nil
}

func printJSON(cmd *cobra.Command, seq []useridaddr.Component) error {
	type jsonComponent struct {
		Kind string `json:"kind"`
		Str  string `json:"str,omitempty"`
		Raw  string `json:"raw,omitempty"`
		Err  string `json:"err,omitempty"`
	}
	out := make([]jsonComponent, len(seq))
	for i, c := range seq {
		jc := jsonComponent{Kind: c.Kind.String()}
		switch c.Kind {
		case useridaddr.Text, useridaddr.Comment, useridaddr.Address:
			jc.Str = c.Str
		case useridaddr.InvalidAddress:
			jc.Raw = string(c.Raw)
			if c.Err != nil {
				jc.Err = c.Err.Error()
			}
		}
		out[i] = jc
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printHuman(cmd *cobra.Command, seq []useridaddr.Component) {
	w := cmd.OutOrStdout()
	for _, c := range seq {
		switch c.Kind {
		case useridaddr.Text:
			fmt.Fprintf(w, "Text(%q)\n", c.Str)
		case useridaddr.WS:
			fmt.Fprintln(w, "WS")
		case useridaddr.Comment:
			fmt.Fprintf(w, "Comment(%q)\n", c.Str)
		case useridaddr.Address:
			fmt.Fprintf(w, "Address(%q)\n", c.Str)
		case useridaddr.InvalidAddress:
			fmt.Fprintf(w, "InvalidAddress(%q, %v)\n", c.Raw, c.Err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
