// Copyright 2026 Hubgate, Inc.
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubgatehq/hubgate/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hubgate",
		Short: "Pass-through GraphQL gateway for the GitHub API",
		Long: `Hubgate re-exposes a curated subset of the GitHub GraphQL API under a
simplified, stable schema. Clients query one flat surface with plain string
fields and uniform pagination envelopes; the gateway translates each
operation into the corresponding upstream query and reshapes the response.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newServeCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
